package score

import (
	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/filter"
	"github.com/dshills/seedscout/pkg/itemdata"
	"github.com/dshills/seedscout/pkg/mask"
	"github.com/dshills/seedscout/pkg/stream"
)

// Result is one seed's scoring outcome: its total weighted score and, in
// the same order as the Filter's Should list, each should clause's
// weighted contribution (count_occurrences * clause.Score, zeroed below
// clause.Min) — spec §4.5 step 6/7's "per-clause tallies".
type Result struct {
	Seed       string `json:"seed"`
	TotalScore int    `json:"totalScore"`
	Tallies    []int  `json:"tallies"`
}

// Evaluate runs spec §4.5 steps 1-6 for one seed that already passed the
// vectorized filter and individual verifier: a fresh scalar run state,
// must-clause re-verification (vouchers first, sharing one walk with every
// other voucher clause in the filter so activation order matches a single
// pass), mustNot rejection, and should-clause tallying. matched reports
// whether the fresh re-verification still agrees the seed passes —
// normally true, since the verifier already confirmed it, but the boss
// generation failure mode (spec §4.6) can still surface here and is caught
// by the deferred recover the same way pkg/verify handles it.
//
// The cutoff comparison and emission (step 7) are deliberately not done
// here — see TryEmit — since raising the cutoff and invoking the sink are
// one atomic-from-the-caller's-perspective action a caller may want to
// serialize differently than scoring itself.
func Evaluate(f *clause.Filter, seed string, table *itemdata.Table, generatedFirstPack bool) (result Result, matched bool) {
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()

	seedBytes := []byte(seed)
	var seeds [mask.Width][]byte
	seeds[0] = seedBytes
	b := filter.NewBatch(seeds, func(sb []byte) *stream.Context {
		return stream.NewContext(sb, table, f.Deck, f.Stake)
	}, generatedFirstPack)
	const lane = 0
	live := mask.Lane(lane)

	// Every voucher clause across must/should/mustNot shares one
	// sequential walk (spec §9): a per-list walk would re-advance the same
	// cached voucher streams and double-activate.
	var voucherClauses []*clause.PreparedClause
	voucherIndex := make(map[*clause.PreparedClause]int)
	collectVouchers := func(clauses []*clause.PreparedClause) {
		for _, pc := range clauses {
			if pc.Kind == clause.KindVoucher {
				voucherIndex[pc] = len(voucherClauses)
				voucherClauses = append(voucherClauses, pc)
			}
		}
	}
	collectVouchers(f.Must)
	collectVouchers(f.Should)
	collectVouchers(f.MustNot)

	var voucherMasks []mask.Mask8
	var voucherCounts [][mask.Width]int
	if len(voucherClauses) > 0 {
		voucherMasks, voucherCounts = filter.VoucherPass(b, voucherClauses, live)
	}

	matchesClause := func(pc *clause.PreparedClause) bool {
		if pc.Kind == clause.KindVoucher {
			return voucherMasks[voucherIndex[pc]].Get(lane)
		}
		return filter.Evaluate(b, pc, live).Get(lane)
	}

	for _, pc := range f.Must {
		if !matchesClause(pc) {
			return Result{}, false
		}
	}
	for _, pc := range f.MustNot {
		if matchesClause(pc) {
			return Result{}, false
		}
	}

	tallies := make([]int, len(f.Should))
	total := 0
	for i, pc := range f.Should {
		var count int
		if pc.Kind == clause.KindVoucher {
			count = voucherCounts[voucherIndex[pc]][lane]
		} else {
			count = filter.CountOccurrences(b, pc, lane)
		}
		if pc.HasMin && count < pc.Min {
			count = 0
		}
		weighted := count * pc.Score
		tallies[i] = weighted
		total += weighted
	}

	return Result{Seed: seed, TotalScore: total, Tallies: tallies}, true
}

// TryEmit implements spec §4.5 step 7: if result's total score meets or
// exceeds the current cutoff, the cutoff is raised (if result.TotalScore
// strictly exceeds it) and the sink is invoked; found is incremented. A
// score below the current cutoff is silently dropped — "seeds with scores
// below the current cutoff are never emitted" (spec §4.5).
func TryEmit(sink ResultSink, cutoff *Cutoff, found *FoundCounter, result Result) (emitted bool, err error) {
	if result.TotalScore < cutoff.Load() {
		return false, nil
	}
	if err := sink.OnResult(result.Seed, result.TotalScore, result.Tallies); err != nil {
		return false, err
	}
	cutoff.Raise(result.TotalScore)
	found.Increment()
	return true, nil
}
