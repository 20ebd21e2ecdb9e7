package filter

import (
	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/mask"
)

// Joker evaluates a joker clause against a batch (spec §4.3.5). For each
// clause ante: when sources.shop is enabled, walks the shared shop-joker
// stream up to the highest requested shop slot; when sources.packs is
// enabled, walks the shared booster-pack stream for Buffoon packs at
// included pack slots and draws their contents (maximum count, masked by
// true pack size per lane, same as the consumable predicates). A slot the
// stream excluded (CategoryJokerExcludedByStream) never matches anything,
// including AnyJoker.
func Joker(b *Batch, pc *clause.PreparedClause, live mask.Mask8) mask.Mask8 {
	var result mask.Mask8

	for ante := 1; ante <= 63; ante++ {
		if pc.AntesMask&(1<<uint(ante)) == 0 {
			continue
		}
		for lane := 0; lane < mask.Width; lane++ {
			if !live.Get(lane) || result.Get(lane) {
				continue
			}
			if pc.SourceShop && shopJokerSlotsMatch(b, pc, lane, ante) {
				result = result.Set(lane, true)
				continue
			}
			if pc.SourcePacks && buffoonPackSlotsMatch(b, pc, lane, ante) {
				result = result.Set(lane, true)
			}
		}
	}
	return result.And(live)
}

func shopJokerSlotsMatch(b *Batch, pc *clause.PreparedClause, lane, ante int) bool {
	highest := highestSlot(pc.ShopSlotsMask)
	if highest < 0 {
		return false
	}
	for slot := 0; slot <= highest; slot++ {
		if pc.ShopSlotsMask&(1<<uint(slot)) == 0 {
			continue
		}
		it := b.shopJokerSlot(lane, ante, slot)
		if jokerMatches(b, lane, pc, it) {
			return true
		}
	}
	return false
}

func buffoonPackSlotsMatch(b *Batch, pc *clause.PreparedClause, lane, ante int) bool {
	highest := highestPackSlot(pc.PackSlotsMask)
	if highest < 0 {
		return false
	}
	for slot := 0; slot <= highest; slot++ {
		if pc.PackSlotsMask&(1<<uint(slot)) == 0 {
			continue
		}
		draw := b.packSlot(lane, ante, slot)
		if draw.typ != item.PackBuffoon {
			continue
		}
		if pc.SourceRequireMega && draw.size != item.PackMega {
			continue
		}
		n := draw.size.Count()
		maxN := item.PackMega.Count()
		for i := 0; i < maxN; i++ {
			it := b.contentCard(lane, item.CategoryJoker, ante, slot, i)
			if i >= n {
				continue
			}
			if jokerMatches(b, lane, pc, it) {
				return true
			}
		}
	}
	return false
}

func jokerMatches(b *Batch, lane int, pc *clause.PreparedClause, it item.Item) bool {
	if it.IsExcluded() {
		return false
	}
	if pc.HasEdition && it.Edition != pc.Edition {
		return false
	}
	if !it.Stickers.Has(pc.Stickers) {
		return false
	}
	if pc.Wildcard != clause.WildcardNone {
		rarity, ok := b.Ctx[lane].Table.Rarity(it.Name)
		if !ok {
			return false
		}
		return pc.Wildcard.Matches(rarity)
	}
	for _, v := range pc.Values {
		if v == it.Name {
			return true
		}
	}
	return false
}
