package search

import (
	"context"
	"sync/atomic"

	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/filter"
	"github.com/dshills/seedscout/pkg/itemdata"
	"github.com/dshills/seedscout/pkg/mask"
	"github.com/dshills/seedscout/pkg/score"
	"github.com/dshills/seedscout/pkg/stream"
	"github.com/dshills/seedscout/pkg/verify"
)

// Stats are the counters Run shares with a caller-owned status reporter
// (spec §5.1): seeds examined and seeds emitted so far. Both fields are
// safe to read concurrently while Run is in progress.
type Stats struct {
	Examined atomic.Int64
	Found    *score.FoundCounter
}

// Run drives one worker's seed range through the three-stage pipeline
// (spec §4): seeds are pulled mask.Width at a time and built into one
// vectorized filter.Batch, the batch's must/mustNot clauses are evaluated
// across all eight lanes at once, every lane whose mask survives is
// re-verified scalar-style (spec §4.4), and every seed the verifier
// confirms is scored and offered to cutoff/sink (spec §4.5).
//
// cancel is polled between batches only — Run never cancels mid-batch
// (spec §4.6, §9's cooperative cancellation). ctx is checked the same way
// dungo's generator checks ctx.Done() between pipeline stages; either mechanism
// stopping Run returns ctx.Err() or nil, never a partial-batch error.
func Run(ctx context.Context, f *clause.Filter, seeds SeedRangeIterator, cutoffCfg score.CutoffConfig, cancel *atomic.Bool, sink score.ResultSink) (*Stats, error) {
	return RunWithTable(ctx, f, seeds, cutoffCfg, cancel, sink, itemdata.Default(), false)
}

// RunWithTable is Run with an explicit item table and first-pack flag,
// split out so tests and alternate item data sets don't need the package
// default (spec §4.1's GeneratedFirstPack knob).
func RunWithTable(ctx context.Context, f *clause.Filter, seeds SeedRangeIterator, cutoffCfg score.CutoffConfig, cancel *atomic.Bool, sink score.ResultSink, table *itemdata.Table, generatedFirstPack bool) (*Stats, error) {
	cutoff := score.NewCutoffFromConfig(cutoffCfg)
	stats := &Stats{Found: &score.FoundCounter{}}
	return stats, runLoop(ctx, f, seeds, cutoff, stats, cancel, sink, table, generatedFirstPack)
}

// RunShared is Run with the adaptive-cutoff cell and the Stats (and its
// FoundCounter) supplied by the caller instead of built fresh. Spec §6's
// search entry point takes a cutoff_config value because one worker is
// handed one seed range by an external dispatcher (spec §5) — but a
// dispatcher fanning out several workers over one search still needs them
// to share a single learned cutoff and a single examined/found tally
// (spec §4.5/§5.1/§9's "adaptive cutoff via atomic exchange" is meaningless
// per-worker, and a status reporter watching one worker's Stats would
// undercount the others). cmd/seedscout is that dispatcher for its own
// -workers flag: it builds one *score.Cutoff and one *Stats and passes
// both to every worker goroutine's RunShared call.
func RunShared(ctx context.Context, f *clause.Filter, seeds SeedRangeIterator, cutoff *score.Cutoff, stats *Stats, cancel *atomic.Bool, sink score.ResultSink, table *itemdata.Table, generatedFirstPack bool) error {
	return runLoop(ctx, f, seeds, cutoff, stats, cancel, sink, table, generatedFirstPack)
}

func runLoop(ctx context.Context, f *clause.Filter, seeds SeedRangeIterator, cutoff *score.Cutoff, stats *Stats, cancel *atomic.Bool, sink score.ResultSink, table *itemdata.Table, generatedFirstPack bool) error {
	ctxFactory := func(sb []byte) *stream.Context {
		return stream.NewContext(sb, table, f.Deck, f.Stake)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if cancel != nil && cancel.Load() {
			return nil
		}

		var lanes [mask.Width][]byte
		var lanesLive int
		for i := 0; i < mask.Width; i++ {
			sb, ok := seeds.Next()
			if !ok {
				break
			}
			lanes[i] = sb
			lanesLive++
		}
		if lanesLive == 0 {
			return nil
		}

		live := mask.AllZero
		for i := 0; i < lanesLive; i++ {
			live = live.Set(i, true)
		}

		b := filter.NewBatch(lanes, ctxFactory, generatedFirstPack)
		mustMasks, _, mustNotMasks := filter.EvaluateAll(b, f.Must, nil, f.MustNot, live)

		survivors := live
		for _, m := range mustMasks {
			survivors = survivors.And(m)
		}
		for _, m := range mustNotMasks {
			survivors = survivors.AndNot(m)
		}

		stats.Examined.Add(int64(lanesLive))

		if survivors.AllZero() {
			if lanesLive < mask.Width {
				return nil
			}
			continue
		}

		for lane := 0; lane < lanesLive; lane++ {
			if !survivors.Get(lane) {
				continue
			}
			if !verify.Verify(f, lanes[lane], table, generatedFirstPack) {
				continue
			}
			result, matched := score.Evaluate(f, string(lanes[lane]), table, generatedFirstPack)
			if !matched {
				continue
			}
			if _, err := score.TryEmit(sink, cutoff, stats.Found, result); err != nil {
				return err
			}
		}

		if lanesLive < mask.Width {
			return nil
		}
	}
}
