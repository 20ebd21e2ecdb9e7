package stream_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/itemdata"
	"github.com/dshills/seedscout/pkg/rng"
	"github.com/dshills/seedscout/pkg/stream"
)

func testContext(seed uint64) *stream.Context {
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(seed >> (8 * uint(i)))
	}
	return stream.NewContext(b, itemdata.Default(), item.DeckRed, item.StakeWhite)
}

func noneActive(string) bool { return false }

func TestVoucherStreamDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		ante := rapid.IntRange(0, 39).Draw(t, "ante")

		a := stream.NewVoucherStream(testContext(seed), ante)
		b := stream.NewVoucherStream(testContext(seed), ante)

		for i := 0; i < 5; i++ {
			if got, want := a.Next(noneActive), b.Next(noneActive); got != want {
				t.Fatalf("draw %d: %q != %q", i, got, want)
			}
		}
	})
}

func TestVoucherPeekDoesNotDoubleAdvance(t *testing.T) {
	ctx := testContext(42)
	vs := stream.NewVoucherStream(ctx, 1)

	first := vs.Peek(noneActive)
	second := vs.Peek(noneActive)
	if first != second {
		t.Fatalf("Peek not idempotent: %q != %q", first, second)
	}
	consumed := vs.Next(noneActive)
	if consumed != first {
		t.Fatalf("Next after Peek = %q, want cached %q", consumed, first)
	}

	// Once consumed, Next draws a fresh voucher rather than replaying the peek.
	ctxFresh := testContext(42)
	control := stream.NewVoucherStream(ctxFresh, 1)
	control.Next(noneActive) // advance past the same first draw
	want := control.Next(noneActive)
	if got := vs.Next(noneActive); got != want {
		t.Fatalf("post-peek Next = %q, want %q", got, want)
	}
}

func TestVoucherUpgradeEligibility(t *testing.T) {
	ctx := testContext(7)
	vs := stream.NewVoucherStream(ctx, 1)
	active := map[string]bool{}
	isActive := func(name string) bool { return active[name] }

	var names []string
	tbl := itemdata.Default()
	baseOf := map[string]string{}
	for _, v := range tbl.Vouchers() {
		if v.Upgrade != "" {
			baseOf[v.Upgrade] = v.Name
		}
	}
	for range tbl.Vouchers() {
		n := vs.Next(isActive)
		if base, ok := baseOf[n]; ok && !active[base] {
			t.Fatalf("upgrade %q offered before its base %q was active", n, base)
		}
		if active[n] {
			t.Fatalf("voucher %q offered again after activation", n)
		}
		active[n] = true
		names = append(names, n)
	}
	for _, n := range names {
		if n == "" {
			t.Fatal("voucher draw should never be empty when candidates remain")
		}
	}
}

func TestTagStreamOrderIsSmallThenBig(t *testing.T) {
	ctx := testContext(100)
	ts := stream.NewTagStream(ctx, 1)
	small, big := ts.Next()
	if small == "" || big == "" {
		t.Fatal("expected non-empty tags")
	}

	// The small-blind tag is the stream's first draw, the big-blind tag its second.
	draw := rng.NewStream(ctx.SeedBytes, "tag", 1)
	tags := itemdata.Default().Tags()
	if want := tags[draw.IntN(len(tags))]; small != want {
		t.Fatalf("small tag = %q, want first draw %q", small, want)
	}
	if want := tags[draw.IntN(len(tags))]; big != want {
		t.Fatalf("big tag = %q, want second draw %q", big, want)
	}
}

func TestBossStreamCarriesStateAcrossAntes(t *testing.T) {
	ctx := testContext(9)
	bs := stream.NewBossStream(ctx, 1)

	seen := map[int]string{}
	for i := 0; i < 5; i++ {
		ante, boss := bs.Next()
		if ante != i+1 {
			t.Fatalf("ante %d, want %d", ante, i+1)
		}
		seen[ante] = boss
	}

	// A fresh stream over the same seed reproduces the same sequence.
	bs2 := stream.NewBossStream(testContext(9), 1)
	for i := 0; i < 5; i++ {
		ante, boss := bs2.Next()
		if seen[ante] != boss {
			t.Fatalf("ante %d: %q != %q", ante, boss, seen[ante])
		}
	}
}

func TestBoosterPackStreamDiscardsPhantomFirstPackFromAnte2(t *testing.T) {
	ctx := testContext(55)

	// Ante 1: no discard.
	withoutDiscard := stream.NewBoosterPackStream(ctx, 1, true)
	t1, s1 := withoutDiscard.Next()

	raw := stream.NewBoosterPackStream(testContext(55), 1, false)
	t1Raw, s1Raw := raw.Next()
	if t1 != t1Raw || s1 != s1Raw {
		t.Fatal("ante 1 should never discard a phantom pack")
	}

	// Ante 2: discard means the first visible pack is the *second* raw draw.
	discarding := stream.NewBoosterPackStream(testContext(55), 2, true)
	gotType, gotSize := discarding.Next()

	rawAnte2 := stream.NewBoosterPackStream(testContext(55), 2, false)
	rawAnte2.Next() // the phantom pack
	wantType, wantSize := rawAnte2.Next()

	if gotType != wantType || gotSize != wantSize {
		t.Fatalf("discarded stream = (%v,%v), want (%v,%v)", gotType, gotSize, wantType, wantSize)
	}
}

func TestPackContentStreamsAreDeterministicAndSized(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		ante := rapid.IntRange(1, 8).Draw(t, "ante")
		n := item.PackMega.Count()

		a := stream.NewArcanaPackTarotStream(testContext(seed), ante, 0)
		b := stream.NewArcanaPackTarotStream(testContext(seed), ante, 0)
		for i := 0; i < n; i++ {
			ca, cb := a.Next(), b.Next()
			if ca != cb {
				t.Fatalf("card %d differs: %+v != %+v", i, ca, cb)
			}
		}
	})
}

func TestSoulJokerStreamIsGlobalAndLegendaryOnly(t *testing.T) {
	ctx := testContext(3)
	sj := stream.NewSoulJokerStream(ctx)
	tbl := itemdata.Default()

	for i := 0; i < 10; i++ {
		name := sj.Next()
		if !tbl.IsLegendary(name) {
			t.Fatalf("soul joker %q is not legendary", name)
		}
	}
}

func TestShopJokerStreamNeverYieldsLegendary(t *testing.T) {
	ctx := testContext(21)
	sj := stream.NewShopJokerStream(ctx)
	tbl := itemdata.Default()

	for i := 0; i < 50; i++ {
		it := sj.Next()
		if it.Category != item.CategoryJoker {
			continue
		}
		if tbl.IsLegendary(it.Name) {
			t.Fatalf("shop joker stream yielded legendary %q", it.Name)
		}
	}
}

func TestShopItemStreamExcludesSoulCards(t *testing.T) {
	ctx := testContext(1001)
	si := stream.NewShopItemStream(ctx, 3, stream.ShopExclusion(0))
	tbl := itemdata.Default()

	for i := 0; i < 50; i++ {
		it := si.Next()
		if it.Category == item.CategorySpectralCard && tbl.NeverInShop(it.Name) {
			t.Fatalf("shop item stream yielded forbidden spectral %q", it.Name)
		}
	}
}

func TestShopItemStreamRespectsExclusions(t *testing.T) {
	ctx := testContext(77)
	si := stream.NewShopItemStream(ctx, 2, stream.ExcludePlanet)

	for i := 0; i < 30; i++ {
		it := si.Next()
		if it.Category == item.CategoryPlanetCard {
			t.Fatal("planet cards should be excluded")
		}
	}
}
