package filter

import (
	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/mask"
)

// PlayingCard evaluates a playingcard clause against a batch (spec §4.3.7).
// Only Standard packs ever yield playing cards, so this predicate only ever
// walks pack slots, never shop slots. Suit/rank/enhancement/seal each match
// as a wildcard ("Any"/omitted) or an exact equality; edition is an
// additional AND, the same as the other consumable predicates.
func PlayingCard(b *Batch, pc *clause.PreparedClause, live mask.Mask8) mask.Mask8 {
	var result mask.Mask8

	for ante := 1; ante <= 63; ante++ {
		if pc.AntesMask&(1<<uint(ante)) == 0 {
			continue
		}
		for lane := 0; lane < mask.Width; lane++ {
			if !live.Get(lane) || result.Get(lane) {
				continue
			}
			if pc.SourcePacks && standardPackSlotsMatch(b, pc, lane, ante) {
				result = result.Set(lane, true)
			}
		}
	}
	return result.And(live)
}

func standardPackSlotsMatch(b *Batch, pc *clause.PreparedClause, lane, ante int) bool {
	highest := highestPackSlot(pc.PackSlotsMask)
	if highest < 0 {
		return false
	}
	for slot := 0; slot <= highest; slot++ {
		if pc.PackSlotsMask&(1<<uint(slot)) == 0 {
			continue
		}
		draw := b.packSlot(lane, ante, slot)
		if draw.typ != item.PackStandard {
			continue
		}
		if pc.SourceRequireMega && draw.size != item.PackMega {
			continue
		}
		n := draw.size.Count()
		maxN := item.PackMega.Count()
		for i := 0; i < n && i < maxN; i++ {
			it := b.contentCard(lane, item.CategoryPlayingCard, ante, slot, i)
			if playingCardMatches(pc, it) {
				return true
			}
		}
	}
	return false
}

func playingCardMatches(pc *clause.PreparedClause, it item.Item) bool {
	if pc.HasSuit && it.Suit != pc.Suit {
		return false
	}
	if pc.HasRank && it.Rank != pc.Rank {
		return false
	}
	if pc.HasEnhancement && it.Enhancement != pc.Enhancement {
		return false
	}
	if pc.HasSeal && it.Seal != pc.Seal {
		return false
	}
	if pc.HasEdition && it.Edition != pc.Edition {
		return false
	}
	return true
}
