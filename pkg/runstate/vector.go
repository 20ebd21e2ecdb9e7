package runstate

import "github.com/dshills/seedscout/pkg/mask"

// Vector is the 8-lane run state carried through the vectorized filter
// stage. It tracks only what the vectorized predicates need: per-lane
// activated-voucher sets and per-lane showman bits. Owned-joker tracking is
// scalar-only (spec §4.2); any clause needing it must fall back to the
// individual verifier.
type Vector struct {
	activeVouchers [mask.Width]map[string]bool
	showman        mask.Mask8
}

// NewVector returns a fresh 8-lane run state with nothing activated.
func NewVector() *Vector {
	v := &Vector{}
	for i := range v.activeVouchers {
		v.activeVouchers[i] = make(map[string]bool)
	}
	return v
}

// ActivateVoucher activates voucher name in lane i.
func (v *Vector) ActivateVoucher(lane int, name string) {
	v.activeVouchers[lane][name] = true
}

// ActivateVouchers activates, per lane, the voucher named in names (names[i]
// activated in lane i); a lane with an empty string is left unchanged,
// matching the vectorized "activate_voucher(vector_of_vouchers)" contract.
func (v *Vector) ActivateVouchers(names [mask.Width]string) {
	for i, name := range names {
		if name != "" {
			v.activeVouchers[i][name] = true
		}
	}
}

// IsVoucherActive reports whether name is active in lane i.
func (v *Vector) IsVoucherActive(lane int, name string) bool {
	return v.activeVouchers[lane][name]
}

// ActiveMask returns a mask with lane i set iff name is active in lane i —
// the queryable active-set voucher rate adjustments inside streams rely on.
func (v *Vector) ActiveMask(name string) mask.Mask8 {
	var m mask.Mask8
	for i := 0; i < mask.Width; i++ {
		if v.activeVouchers[i][name] {
			m = m.Set(i, true)
		}
	}
	return m
}

// ActivateShowman sets the showman bit for lane i.
func (v *Vector) ActivateShowman(lane int) {
	v.showman = v.showman.Set(lane, true)
}

// ShowmanMask returns the per-lane showman bits.
func (v *Vector) ShowmanMask() mask.Mask8 {
	return v.showman
}

// Lane projects lane i of this vectorized state into a standalone Scalar,
// for handoff to the individual verifier.
func (v *Vector) Lane(i int) *Scalar {
	s := NewScalar()
	for name := range v.activeVouchers[i] {
		s.ActivateVoucher(name)
	}
	if v.showman.Get(i) {
		s.ActivateShowman()
	}
	return s
}
