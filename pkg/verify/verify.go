package verify

import (
	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/filter"
	"github.com/dshills/seedscout/pkg/itemdata"
	"github.com/dshills/seedscout/pkg/mask"
	"github.com/dshills/seedscout/pkg/stream"
)

// Verify reports whether one seed satisfies every must clause and no
// mustNot clause of f, replaying the exact predicate code pkg/filter uses
// for vectorized batches but at lane width 1 (lanes 1..7 left unset and
// never queried). generatedFirstPack mirrors the same-named Batch field
// (spec §4.1's guaranteed-first-pack skip).
//
// Boss-generation is the one documented internal failure mode (spec §7);
// a panic there is caught and treated as "not matched" rather than
// propagated, since clause evaluation errors never carry control-flow
// meaning on the hot path.
func Verify(f *clause.Filter, seedBytes []byte, table *itemdata.Table, generatedFirstPack bool) (matched bool) {
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()

	var seeds [mask.Width][]byte
	seeds[0] = seedBytes
	b := filter.NewBatch(seeds, func(sb []byte) *stream.Context {
		return stream.NewContext(sb, table, f.Deck, f.Stake)
	}, generatedFirstPack)
	live := mask.Lane(0)

	mustMasks, _, mustNotMasks := filter.EvaluateAll(b, f.Must, nil, f.MustNot, live)

	for _, m := range mustNotMasks {
		if m.Get(0) {
			return false
		}
	}
	for _, m := range mustMasks {
		if !m.Get(0) {
			return false
		}
	}
	return true
}
