package filter

import (
	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/mask"
)

// SoulJoker evaluates a souljoker clause against a batch (spec §4.3.6). A
// soul joker clause matches lane/ante iff both hold: the batch's single
// global legendary draw for that lane matches the clause's target, and some
// Arcana or Spectral pack at an included pack slot for that ante contains
// the Soul card (or, for a Black-Hole-specific target, Black Hole).
//
// Each lane has a single legendary draw: the first value of its
// SoulJokerStream, cached on the Batch and compared at every clause ante.
// The stream is not advanced once per Soul card found, so the legendary a
// second or later Soul would grant is never compared. pkg/verify replays
// this same predicate at lane width 1 and reaches the same answer.
func SoulJoker(b *Batch, pc *clause.PreparedClause, live mask.Mask8) mask.Mask8 {
	var result mask.Mask8

	for ante := 1; ante <= 63; ante++ {
		if pc.AntesMask&(1<<uint(ante)) == 0 {
			continue
		}
		for lane := 0; lane < mask.Width; lane++ {
			if !live.Get(lane) || result.Get(lane) {
				continue
			}
			if !soulJokerValueMatches(pc, b.soulJoker(lane)) {
				continue
			}
			if pc.SourcePacks && soulPresentInPacks(b, pc, lane, ante) {
				result = result.Set(lane, true)
			}
		}
	}
	return result.And(live)
}

func soulJokerValueMatches(pc *clause.PreparedClause, name string) bool {
	if pc.Wildcard == clause.WildcardAnyJoker {
		return true
	}
	for _, v := range pc.Values {
		if v == name {
			return true
		}
	}
	return false
}

// soulPresentInPacks walks this ante's included pack slots looking for an
// Arcana or Spectral pack containing the Soul card.
func soulPresentInPacks(b *Batch, pc *clause.PreparedClause, lane, ante int) bool {
	highest := highestPackSlot(pc.PackSlotsMask)
	if highest < 0 {
		return false
	}
	for slot := 0; slot <= highest; slot++ {
		if pc.PackSlotsMask&(1<<uint(slot)) == 0 {
			continue
		}
		draw := b.packSlot(lane, ante, slot)
		var cat item.Category
		switch draw.typ {
		case item.PackArcana:
			cat = item.CategoryTarotCard
		case item.PackSpectral:
			cat = item.CategorySpectralCard
		default:
			continue
		}
		n := draw.size.Count()
		for i := 0; i < n; i++ {
			it := b.contentCard(lane, cat, ante, slot, i)
			if it.Category == item.CategorySpectralCard && b.Ctx[lane].Table.IsSoulCard(it.Name) {
				return true
			}
		}
	}
	return false
}
