package filter

import (
	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/mask"
)

// VoucherPass evaluates every voucher clause against a batch in one shared
// walk, implementing spec §4.3.1. Voucher clauses must never be evaluated
// independently of one another: each ante's first voucher is queried and
// activated in run state exactly once, and activation is unconditional
// (every live lane's observed voucher is activated even if no clause lists
// that ante) so later antes see the correct active set. A per-clause walk
// would double-advance the stream and double-activate vouchers the moment
// two clauses share an ante — this applies across must/should/mustNot
// alike, so callers must pass every voucher clause a Batch will ever need
// in one VoucherPass call rather than calling it once per list.
//
// Returns, per input clause: a mask (lane matches at some listed ante) and
// a per-lane occurrence count (how many listed antes matched — spec §4.5's
// count_occurrences for Voucher), both already ANDed/zeroed against live.
func VoucherPass(b *Batch, clauses []*clause.PreparedClause, live mask.Mask8) (masks []mask.Mask8, counts [][mask.Width]int) {
	masks = make([]mask.Mask8, len(clauses))
	counts = make([][mask.Width]int, len(clauses))

	maxAnte := 0
	for _, pc := range clauses {
		for a := 1; a <= 63; a++ {
			if pc.AntesMask&(1<<uint(a)) != 0 && a > maxAnte {
				maxAnte = a
			}
		}
	}

	for ante := 1; ante <= maxAnte; ante++ {
		var first, bonus [mask.Width]string
		var hasBonus [mask.Width]bool
		for lane := 0; lane < mask.Width; lane++ {
			if !live.Get(lane) {
				continue
			}
			vs := b.voucherStream(lane, ante)
			f := vs.Peek(b.isVoucherActive(lane))
			first[lane] = f
			b.RunState.ActivateVoucher(lane, f)

			if b.Ctx[lane].Table.IsBonusVoucher(f) {
				vs.Next(b.isVoucherActive(lane)) // consume the cached peek
				bo := vs.Next(b.isVoucherActive(lane))
				b.RunState.ActivateVoucher(lane, bo)
				bonus[lane] = bo
				hasBonus[lane] = true
			} else {
				vs.Next(b.isVoucherActive(lane)) // consume the cached peek only
			}
		}

		for ci, pc := range clauses {
			if pc.AntesMask&(1<<uint(ante)) == 0 {
				continue
			}
			for lane := 0; lane < mask.Width; lane++ {
				if !live.Get(lane) {
					continue
				}
				matched := matchesVoucherValue(pc, first[lane])
				if !matched && hasBonus[lane] {
					matched = matchesVoucherValue(pc, bonus[lane])
				}
				if matched {
					masks[ci] = masks[ci].Set(lane, true)
					counts[ci][lane]++
				}
			}
		}
	}

	for ci := range masks {
		masks[ci] = masks[ci].And(live)
	}
	return masks, counts
}

func matchesVoucherValue(pc *clause.PreparedClause, observed string) bool {
	if observed == "" {
		return false
	}
	for _, v := range pc.Values {
		if v == observed {
			return true
		}
	}
	return false
}
