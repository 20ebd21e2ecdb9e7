package filter

import (
	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/mask"
)

// Consumable evaluates a tarotcard/planetcard/spectralcard clause against a
// batch (spec §4.3.4). For each clause ante: when sources.shop is enabled,
// walks the shared shop-item stream up to the highest requested shop slot,
// testing only the slots the clause's ShopSlotsMask includes; when
// sources.packs is enabled, walks the shared booster-pack stream, and for
// every pack whose type matches this clause's category at an included pack
// slot, draws its contents (always the maximum possible count, masking out
// positions past the pack's true size per lane) and ORs a name match across
// them. Edition, when set, applies as an additional per-item AND.
func Consumable(b *Batch, pc *clause.PreparedClause, live mask.Mask8) mask.Mask8 {
	cat := kindCategory(pc.Kind)
	var result mask.Mask8

	for ante := 1; ante <= 63; ante++ {
		if pc.AntesMask&(1<<uint(ante)) == 0 {
			continue
		}
		for lane := 0; lane < mask.Width; lane++ {
			if !live.Get(lane) {
				continue
			}
			if result.Get(lane) {
				continue
			}
			if pc.SourceShop && shopSlotsMatch(b, pc, lane, ante, cat) {
				result = result.Set(lane, true)
				continue
			}
			if pc.SourcePacks && packSlotsMatch(b, pc, lane, ante, cat) {
				result = result.Set(lane, true)
			}
		}
	}
	return result.And(live)
}

func kindCategory(k clause.Kind) item.Category {
	switch k {
	case clause.KindTarotCard:
		return item.CategoryTarotCard
	case clause.KindPlanetCard:
		return item.CategoryPlanetCard
	case clause.KindSpectralCard:
		return item.CategorySpectralCard
	default:
		return item.CategoryTarotCard
	}
}

func highestSlot(slotsMask uint64) int {
	highest := -1
	for i := 0; i < 64; i++ {
		if slotsMask&(1<<uint(i)) != 0 {
			highest = i
		}
	}
	return highest
}

func shopSlotsMatch(b *Batch, pc *clause.PreparedClause, lane, ante int, cat item.Category) bool {
	highest := highestSlot(pc.ShopSlotsMask)
	if highest < 0 {
		return false
	}
	for slot := 0; slot <= highest; slot++ {
		if pc.ShopSlotsMask&(1<<uint(slot)) == 0 {
			continue
		}
		it := b.shopSlot(lane, ante, slot)
		if it.Category != cat {
			continue
		}
		if consumableMatches(pc, it) {
			return true
		}
	}
	return false
}

// packSlotsMatch walks the shared booster-pack stream for this ante,
// drawing each pack's type/size and, for packs of this clause's category at
// an included slot, its contents. Non-matching-type packs are still drawn
// from the pack stream (to stay aligned) but their contents are never read
// from the content stream, since each pack slot's content stream is
// independent per (ante, slot) and only ever advances when that slot is
// actually inspected.
func packSlotsMatch(b *Batch, pc *clause.PreparedClause, lane, ante int, cat item.Category) bool {
	highest := highestPackSlot(pc.PackSlotsMask)
	if highest < 0 {
		return false
	}
	wantType := categoryPackType(cat)
	for slot := 0; slot <= highest; slot++ {
		if pc.PackSlotsMask&(1<<uint(slot)) == 0 {
			continue
		}
		draw := b.packSlot(lane, ante, slot)
		if draw.typ != wantType {
			continue
		}
		if pc.SourceRequireMega && draw.size != item.PackMega {
			continue
		}
		n := draw.size.Count()
		maxN := item.PackMega.Count()
		for i := 0; i < maxN; i++ {
			it := b.contentCard(lane, cat, ante, slot, i)
			if i >= n {
				continue // past this pack's true size; masked out per lane
			}
			if consumableMatches(pc, it) {
				return true
			}
		}
	}
	return false
}

func highestPackSlot(slotsMask uint8) int {
	highest := -1
	for i := 0; i < 6; i++ {
		if slotsMask&(1<<uint(i)) != 0 {
			highest = i
		}
	}
	return highest
}

func categoryPackType(cat item.Category) item.PackType {
	switch cat {
	case item.CategoryPlanetCard:
		return item.PackCelestial
	case item.CategorySpectralCard:
		return item.PackSpectral
	default:
		return item.PackArcana
	}
}

func consumableMatches(pc *clause.PreparedClause, it item.Item) bool {
	if pc.HasEdition && it.Edition != pc.Edition {
		return false
	}
	if len(pc.Values) == 0 {
		return true
	}
	for _, v := range pc.Values {
		if v == it.Name {
			return true
		}
	}
	return false
}
