package filter

import (
	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/mask"
)

// Tag evaluates a tag clause against a batch (spec §4.3.2). For each listed
// ante, draws (small, big) from the batch's shared per-ante TagStream and
// builds a lane mask from equality with the clause's target tag(s),
// respecting the clause's tag slot. OR across antes within the clause.
func Tag(b *Batch, pc *clause.PreparedClause, live mask.Mask8) mask.Mask8 {
	var result mask.Mask8
	for ante := 1; ante <= 63; ante++ {
		if pc.AntesMask&(1<<uint(ante)) == 0 {
			continue
		}
		for lane := 0; lane < mask.Width; lane++ {
			if !live.Get(lane) {
				continue
			}
			small, big := b.tagsFor(lane, ante)
			if tagMatches(pc, small, big) {
				result = result.Set(lane, true)
			}
		}
	}
	return result.And(live)
}

func tagMatches(pc *clause.PreparedClause, small, big string) bool {
	switch pc.TagSlot {
	case item.TagSlotSmallBlind:
		return tagValueMatches(pc, small)
	case item.TagSlotBigBlind:
		return tagValueMatches(pc, big)
	default:
		return tagValueMatches(pc, small) || tagValueMatches(pc, big)
	}
}

func tagValueMatches(pc *clause.PreparedClause, tag string) bool {
	for _, v := range pc.Values {
		if v == tag {
			return true
		}
	}
	return false
}

// TagOccurrences counts a tag clause's occurrences at one ante for the
// scoring provider's count_occurrences protocol (spec §4.5): 0, 1, or 2,
// counting both slots when the clause's tag slot is Any.
func TagOccurrences(pc *clause.PreparedClause, small, big string) int {
	n := 0
	switch pc.TagSlot {
	case item.TagSlotSmallBlind:
		if tagValueMatches(pc, small) {
			n++
		}
	case item.TagSlotBigBlind:
		if tagValueMatches(pc, big) {
			n++
		}
	default:
		if tagValueMatches(pc, small) {
			n++
		}
		if tagValueMatches(pc, big) {
			n++
		}
	}
	return n
}
