package search_test

import (
	"context"
	"sort"
	"testing"

	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/itemdata"
	"github.com/dshills/seedscout/pkg/score"
	"github.com/dshills/seedscout/pkg/search"
	"github.com/dshills/seedscout/pkg/verify"
)

// scenarioTable mirrors spec §8's six end-to-end scenarios. No reference
// implementation's pinned seed values exist in this corpus, so each case
// is checked against an independently computed ground truth instead of a
// literal seed list: every seed in a synthetic range is scalar-replayed
// through verify.Verify/score.Evaluate directly (bypassing search.Run
// entirely), and search.Run's own sink output must match that replay
// exactly. This tests Run's batching/lane-survivor wiring against the
// already-covered scalar building blocks, not the predicates themselves.
var scenarioTable = []struct {
	name string
	cfg  *clause.RawConfig
}{
	{
		name: "1_voucher_telescope_ante1",
		cfg: &clause.RawConfig{
			Must: []clause.RawClause{{Type: "voucher", Value: "Telescope", Antes: []int{1}}},
		},
	},
	{
		name: "2_voucher_observatory_antes2to8",
		cfg: &clause.RawConfig{
			Must: []clause.RawClause{{Type: "voucher", Value: "Observatory", Antes: []int{2, 3, 4, 5, 6, 7, 8}}},
		},
	},
	{
		name: "3_souljoker_perkeo_antes1to4",
		cfg: &clause.RawConfig{
			Must: []clause.RawClause{{Type: "souljoker", Value: "Perkeo", Antes: []int{1, 2, 3, 4}}},
		},
	},
	{
		name: "4_joker_blueprint_should",
		cfg: &clause.RawConfig{
			Should: []clause.RawClause{{Type: "joker", Value: "Blueprint", Antes: []int{1, 2, 3, 4, 5, 6, 7, 8}, Score: intPtr(100)}},
		},
	},
	{
		name: "5_and_smallblindtag_and_joker",
		cfg: &clause.RawConfig{
			Must: []clause.RawClause{{
				Type: "and",
				Clauses: []clause.RawClause{
					{Type: "smallblindtag", Value: "NegativeTag", Antes: []int{2}},
					{Type: "joker", Value: "Brainstorm", Antes: []int{2}},
				},
			}},
		},
	},
	{
		name: "6_playingcard_seven_clubs_should",
		cfg: &clause.RawConfig{
			Should: []clause.RawClause{{
				Type:    "playingcard",
				Rank:    "Seven",
				Suit:    "Clubs",
				Antes:   []int{1, 2, 3},
				Score:   intPtr(10),
				Sources: &clause.RawSources{PackSlots: []int{0, 1, 2, 3, 4, 5}},
			}},
		},
	},
}

func TestSearchScenariosAgreeWithScalarReplay(t *testing.T) {
	const rangeSize = 40
	table := itemdata.Default()

	for _, tc := range scenarioTable {
		t.Run(tc.name, func(t *testing.T) {
			f, err := clause.Prepare(tc.cfg)
			if err != nil {
				t.Fatal(err)
			}

			iter, err := search.NewIndexRangeIterator(0, rangeSize, search.DefaultAlphabet)
			if err != nil {
				t.Fatal(err)
			}
			sink := &recordingSearchSink{}
			_, err = search.Run(context.Background(), f, iter, score.CutoffConfig{Base: 0}, nil, sink)
			if err != nil {
				t.Fatal(err)
			}

			replayIter, err := search.NewIndexRangeIterator(0, rangeSize, search.DefaultAlphabet)
			if err != nil {
				t.Fatal(err)
			}
			// Replicate Run's cutoff/TryEmit sequencing exactly: batching
			// into lanes of 8 preserves strict index order across lanes, so
			// a one-seed-at-a-time replay sees the same ordering TryEmit's
			// monotonic cutoff depends on.
			cutoff := score.NewCutoffFromConfig(score.CutoffConfig{Base: 0})
			found := &score.FoundCounter{}
			var want []string
			for {
				sb, ok := replayIter.Next()
				if !ok {
					break
				}
				if !verify.Verify(f, sb, table, false) {
					continue
				}
				result, matched := score.Evaluate(f, string(sb), table, false)
				if !matched {
					continue
				}
				emitted, err := score.TryEmit(score.ResultSinkFunc(func(string, int, []int) error { return nil }), cutoff, found, result)
				if err != nil {
					t.Fatal(err)
				}
				if emitted {
					want = append(want, string(sb))
				}
			}

			got := append([]string(nil), sink.seeds...)
			sort.Strings(got)
			sort.Strings(want)
			if !equalStrings(got, want) {
				t.Fatalf("search.Run seeds = %v, want (scalar replay) %v", got, want)
			}
		})
	}
}

type recordingSearchSink struct {
	seeds []string
}

func (s *recordingSearchSink) OnResult(seed string, totalScore int, tallies []int) error {
	s.seeds = append(s.seeds, seed)
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
