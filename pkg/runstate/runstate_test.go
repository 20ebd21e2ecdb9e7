package runstate_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/seedscout/pkg/mask"
	"github.com/dshills/seedscout/pkg/runstate"
)

func TestScalarVoucherMonotonicity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := runstate.NewScalar()
		v := rapid.StringMatching(`[A-Za-z]{3,12}`).Draw(t, "voucher")
		if s.IsVoucherActive(v) {
			t.Fatalf("voucher %q active before activation", v)
		}
		s.ActivateVoucher(v)
		if !s.IsVoucherActive(v) {
			t.Fatalf("voucher %q not active after activation", v)
		}
		s.ActivateVoucher(v) // idempotent
		if !s.IsVoucherActive(v) {
			t.Fatal("re-activation should not deactivate")
		}
	})
}

func TestScalarOwnedJokerCount(t *testing.T) {
	s := runstate.NewScalar()
	if s.OwnedJokerCount("Blueprint") != 0 {
		t.Fatal("expected 0 owned before any AddOwnedJoker")
	}
	s.AddOwnedJoker("Blueprint")
	s.AddOwnedJoker("Blueprint")
	if s.OwnedJokerCount("Blueprint") != 2 {
		t.Fatalf("OwnedJokerCount = %d, want 2", s.OwnedJokerCount("Blueprint"))
	}
}

func TestScalarShowmanAndBossCache(t *testing.T) {
	s := runstate.NewScalar()
	if s.ShowmanActive() {
		t.Fatal("showman should start false")
	}
	s.ActivateShowman()
	if !s.ShowmanActive() {
		t.Fatal("showman should be active after ActivateShowman")
	}

	if _, ok := s.CachedBoss(1); ok {
		t.Fatal("no boss should be cached yet")
	}
	s.CacheBoss(1, "The Wall")
	b, ok := s.CachedBoss(1)
	if !ok || b != "The Wall" {
		t.Fatalf("CachedBoss(1) = %q, %v; want 'The Wall', true", b, ok)
	}
}

func TestVectorLanesAreIndependent(t *testing.T) {
	v := runstate.NewVector()
	v.ActivateVoucher(0, "Overstock")
	v.ActivateVoucher(3, "Hone")

	for i := 0; i < mask.Width; i++ {
		want := i == 0
		if got := v.IsVoucherActive(i, "Overstock"); got != want {
			t.Fatalf("lane %d IsVoucherActive(Overstock) = %v, want %v", i, got, want)
		}
	}
	m := v.ActiveMask("Overstock")
	if !m.Get(0) || m.Get(1) {
		t.Fatalf("ActiveMask(Overstock) = %08b, want only lane 0 set", m)
	}
}

func TestVectorActivateVouchersSkipsEmptyLanes(t *testing.T) {
	v := runstate.NewVector()
	var names [mask.Width]string
	names[2] = "Telescope"
	v.ActivateVouchers(names)

	for i := 0; i < mask.Width; i++ {
		want := i == 2
		if got := v.IsVoucherActive(i, "Telescope"); got != want {
			t.Fatalf("lane %d = %v, want %v", i, got, want)
		}
	}
}

func TestVectorShowmanMask(t *testing.T) {
	v := runstate.NewVector()
	v.ActivateShowman(1)
	v.ActivateShowman(5)
	m := v.ShowmanMask()
	for i := 0; i < mask.Width; i++ {
		want := i == 1 || i == 5
		if m.Get(i) != want {
			t.Fatalf("lane %d showman = %v, want %v", i, m.Get(i), want)
		}
	}
}

func TestVectorLaneProjection(t *testing.T) {
	v := runstate.NewVector()
	v.ActivateVoucher(4, "Grabber")
	v.ActivateShowman(4)

	s := v.Lane(4)
	if !s.IsVoucherActive("Grabber") {
		t.Fatal("projected scalar should carry lane 4's active voucher")
	}
	if !s.ShowmanActive() {
		t.Fatal("projected scalar should carry lane 4's showman bit")
	}

	other := v.Lane(0)
	if other.IsVoucherActive("Grabber") {
		t.Fatal("lane 0 should not see lane 4's voucher")
	}
}
