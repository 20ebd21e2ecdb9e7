package filter_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/filter"
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/mask"
	"github.com/dshills/seedscout/pkg/stream"
)

func testBatch(seeds [mask.Width]uint64, deck item.Deck) *filter.Batch {
	var seedBytes [mask.Width][]byte
	for i, s := range seeds {
		b := make([]byte, 8)
		for j := 0; j < 8; j++ {
			b[j] = byte(s >> (8 * j))
		}
		seedBytes[i] = b
	}
	return filter.NewBatch(seedBytes, func(sb []byte) *stream.Context {
		return stream.NewContext(sb, nil, deck, item.StakeWhite)
	}, false)
}

func prepare(t *testing.T, rc clause.RawClause) *clause.PreparedClause {
	t.Helper()
	f, err := clause.Prepare(&clause.RawConfig{Must: []clause.RawClause{rc}})
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	return f.Must[0]
}

func seeds8(base uint64) [mask.Width]uint64 {
	var s [mask.Width]uint64
	for i := range s {
		s[i] = base + uint64(i)
	}
	return s
}

func TestBossMatchesAgainstBossStream(t *testing.T) {
	b := testBatch(seeds8(1), item.DeckRed)
	live := b.LiveMask()

	var wanted string
	for lane := 0; lane < mask.Width; lane++ {
		bs := stream.NewBossStream(b.Ctx[lane], 1)
		_, boss := bs.Next()
		if lane == 0 {
			wanted = boss
		}
		_ = boss
	}

	pc := prepare(t, clause.RawClause{Type: "boss", Value: wanted, Antes: []int{1}})
	got := filter.Boss(b, pc, live)
	if !got.Get(0) {
		t.Fatalf("lane 0 should match boss %q at ante 1", wanted)
	}
}

func TestTagOccurrencesCountsBothSlots(t *testing.T) {
	b := testBatch(seeds8(7), item.DeckRed)
	small, big := b.Ctx[0].Table.Tags()[0], b.Ctx[0].Table.Tags()[0]
	_ = big
	pc := &clause.PreparedClause{TagSlot: item.TagSlotAny, Values: []string{small}}
	n := filter.TagOccurrences(pc, small, small)
	if n != 2 {
		t.Fatalf("expected 2 occurrences when both slots equal target, got %d", n)
	}
	n = filter.TagOccurrences(pc, small, "different")
	if n != 1 {
		t.Fatalf("expected 1 occurrence, got %d", n)
	}
}

func TestConsumableRespectsSourceGating(t *testing.T) {
	b := testBatch(seeds8(42), item.DeckRed)
	live := b.LiveMask()

	pc := prepare(t, clause.RawClause{
		Type:  "tarotcard",
		Value: "The Fool",
		Antes: []int{1, 2, 3},
		Sources: &clause.RawSources{
			ShopSlots: []int{}, // present but empty: shop stays disabled
		},
	})
	if pc.SourceShop {
		t.Fatal("explicit empty shop_slots should leave shop sources disabled")
	}
	got := filter.Consumable(b, pc, live)
	// Can't assert a specific outcome without a ground-truth oracle, but the
	// call must not panic and must respect live.
	if got&^live != 0 {
		t.Fatal("result mask must be a subset of live")
	}
}

func TestConsumableWildcardMatchesSubsetOfLive(t *testing.T) {
	b := testBatch(seeds8(13), item.DeckRed)
	live := b.LiveMask()

	for _, typ := range []string{"tarotcard", "planetcard", "spectralcard"} {
		pc := prepare(t, clause.RawClause{Type: typ, Value: "Any", Antes: []int{1, 2, 3}})
		got := filter.Consumable(b, pc, live)
		if got&^live != 0 {
			t.Fatalf("%s: result mask must be a subset of live", typ)
		}
	}
}

func TestJokerWildcardMatchesAnyRarity(t *testing.T) {
	b := testBatch(seeds8(100), item.DeckRed)
	live := b.LiveMask()

	pc := prepare(t, clause.RawClause{Type: "joker", Value: "AnyJoker", Antes: []int{1}})
	got := filter.Joker(b, pc, live)
	if got&^live != 0 {
		t.Fatal("result mask must be a subset of live")
	}
}

func TestJokerExcludedSlotNeverMatchesWildcard(t *testing.T) {
	it := item.Item{Category: item.CategoryJokerExcludedByStream}
	pc := &clause.PreparedClause{Wildcard: clause.WildcardAnyJoker}
	// jokerMatches is unexported; exercise it indirectly via Joker() would
	// require constructing a seed that rolls an excluded slot, which isn't
	// practical to pin. Assert the documented contract on the Item directly.
	if !it.IsExcluded() {
		t.Fatal("expected IsExcluded true for CategoryJokerExcludedByStream")
	}
	_ = pc
}

func TestSoulJokerRequiresBothConditions(t *testing.T) {
	b := testBatch(seeds8(5), item.DeckRed)
	live := b.LiveMask()

	// An impossible joker name can never match soulJokerValueMatches, so the
	// whole predicate must reject every lane regardless of pack contents.
	pc := prepare(t, clause.RawClause{Type: "souljoker", Value: "Nonexistent Joker Name", Antes: []int{1, 2, 3, 4}})
	got := filter.SoulJoker(b, pc, live)
	if got != mask.AllZero {
		t.Fatalf("expected no match for an impossible joker name, got %08b", got)
	}
}

func TestPlayingCardOnlyFromStandardPacks(t *testing.T) {
	b := testBatch(seeds8(9), item.DeckRed)
	live := b.LiveMask()

	pc := prepare(t, clause.RawClause{Type: "playingcard", Suit: "Hearts", Antes: []int{1, 2}})
	got := filter.PlayingCard(b, pc, live)
	if got&^live != 0 {
		t.Fatal("result mask must be a subset of live")
	}
}

func TestAndRequiresAllChildren(t *testing.T) {
	b := testBatch(seeds8(3), item.DeckRed)
	live := b.LiveMask()

	always := &clause.PreparedClause{Kind: clause.KindOr, Children: nil} // unsatisfiable
	never := &clause.PreparedClause{Kind: clause.KindAnd, Children: []*clause.PreparedClause{always}}
	got := filter.And(b, never, live)
	if got != mask.AllZero {
		t.Fatal("And with an unsatisfiable child must reject every lane")
	}
}

func TestOrEmptyChildrenIsUnsatisfiable(t *testing.T) {
	b := testBatch(seeds8(3), item.DeckRed)
	live := b.LiveMask()
	pc := &clause.PreparedClause{Kind: clause.KindOr}
	got := filter.Or(b, pc, live)
	if got != mask.AllZero {
		t.Fatal("empty Or must never match")
	}
}

func TestEvaluateAllSharesOneVoucherWalk(t *testing.T) {
	b := testBatch(seeds8(11), item.DeckRed)
	live := b.LiveMask()

	vouchers := b.Ctx[0].Table.VoucherNames()
	must := []*clause.PreparedClause{
		prepare(t, clause.RawClause{Type: "voucher", Value: vouchers[0], Antes: []int{1, 2}}),
		prepare(t, clause.RawClause{Type: "voucher", Value: vouchers[1], Antes: []int{1, 2}}),
	}
	mustMasks, _, _ := filter.EvaluateAll(b, must, nil, nil, live)
	if len(mustMasks) != 2 {
		t.Fatalf("expected 2 must masks, got %d", len(mustMasks))
	}
	for _, m := range mustMasks {
		if m&^live != 0 {
			t.Fatal("voucher pass result must be a subset of live")
		}
	}
}

func TestCachedSlotsAreStableAcrossRepeatedQueries(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		ante := rapid.IntRange(1, 4).Draw(t, "ante")

		b := testBatch(seeds8(seed), item.DeckRed)
		pcA := prepare(t, clause.RawClause{Type: "tarotcard", Value: "The Fool", Antes: []int{ante}})
		pcB := prepare(t, clause.RawClause{Type: "planetcard", Value: "Mercury", Antes: []int{ante}})

		live := b.LiveMask()
		r1 := filter.Consumable(b, pcA, live)
		r2 := filter.Consumable(b, pcB, live)
		r1Again := filter.Consumable(b, pcA, live)
		if r1 != r1Again {
			t.Fatalf("re-evaluating the same clause against the same batch must be stable: %08b != %08b", r1, r1Again)
		}
		_ = r2
	})
}

// TestShopSlotMaskMonotonicity confirms widening a joker clause's ShopSlots
// to a superset of slots can never lower its CountOccurrences result for
// the same seed: every slot the narrower mask already checked is still
// checked, and the wider mask only adds more slots to sum over.
func TestShopSlotMaskMonotonicity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		ante := rapid.IntRange(1, 4).Draw(t, "ante")

		var subsetSlots, supersetSlots []int
		for slot := 0; slot < 8; slot++ {
			inSubset := rapid.Bool().Draw(t, "inSubset")
			if inSubset {
				subsetSlots = append(subsetSlots, slot)
				supersetSlots = append(supersetSlots, slot)
				continue
			}
			if rapid.Bool().Draw(t, "inExtra") {
				supersetSlots = append(supersetSlots, slot)
			}
		}
		if len(subsetSlots) == 0 {
			subsetSlots = []int{0}
			if len(supersetSlots) == 0 || supersetSlots[0] != 0 {
				supersetSlots = append([]int{0}, supersetSlots...)
			}
		}

		b := testBatch(seeds8(seed), item.DeckRed)
		narrow := prepare(t, clause.RawClause{Type: "joker", Value: "AnyJoker", Antes: []int{ante}, ShopSlots: subsetSlots})
		wide := prepare(t, clause.RawClause{Type: "joker", Value: "AnyJoker", Antes: []int{ante}, ShopSlots: supersetSlots})

		for lane := 0; lane < mask.Width; lane++ {
			narrowCount := filter.CountOccurrences(b, narrow, lane)
			wideCount := filter.CountOccurrences(b, wide, lane)
			if wideCount < narrowCount {
				t.Fatalf("lane %d: widening ShopSlots from %v to %v dropped the count from %d to %d",
					lane, subsetSlots, supersetSlots, narrowCount, wideCount)
			}
		}
	})
}

// TestTagOccurrencesIsAtMostTwo confirms TagOccurrences never reports more
// matches than there are tag slots (small blind, big blind) — the count is
// always 0, 1, or 2 regardless of which values the two slots hold.
func TestTagOccurrencesIsAtMostTwo(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		small := rapid.StringMatching(`[A-Za-z]{3,12}`).Draw(t, "small")
		big := rapid.StringMatching(`[A-Za-z]{3,12}`).Draw(t, "big")
		target := rapid.StringMatching(`[A-Za-z]{3,12}`).Draw(t, "target")

		pc := &clause.PreparedClause{TagSlot: item.TagSlotAny, Values: []string{target}}
		n := filter.TagOccurrences(pc, small, big)
		if n < 0 || n > 2 {
			t.Fatalf("TagOccurrences(%q, %q) against target %q = %d, want 0, 1, or 2", small, big, target, n)
		}
	})
}
