package stream

import "github.com/dshills/seedscout/pkg/rng"

// VoucherStream draws the vouchers offered at the start of one ante (spec
// §4.1's VoucherStream(ante)). Each call to Next consumes exactly one
// voucher draw; Peek queries the first voucher without advancing past it —
// this is the "AnteFirstVoucher(ante), 0 advances per call, cacheable"
// stream the filter evaluator and scoring provider both rely on to avoid
// double-drawing the ante's opening voucher.
type VoucherStream struct {
	ctx  *Context
	draw *rng.Stream

	peeked     bool
	peekedName string
}

// NewVoucherStream builds the voucher stream for one ante.
func NewVoucherStream(ctx *Context, ante int) *VoucherStream {
	return &VoucherStream{ctx: ctx, draw: rng.NewStream(ctx.SeedBytes, "voucher", ante)}
}

// candidates returns every voucher still eligible to be offered: a base
// voucher whose upgrade is already active is never offered again (its line
// is maxed); a base not yet active is offered as itself; once the base is
// active, its upgrade becomes eligible.
func (s *VoucherStream) candidates(isActive func(name string) bool) []string {
	var out []string
	for _, v := range s.ctx.Table.Vouchers() {
		switch {
		case v.Upgrade != "" && isActive(v.Upgrade):
			continue
		case isActive(v.Name):
			if v.Upgrade != "" {
				out = append(out, v.Upgrade)
			}
		default:
			out = append(out, v.Name)
		}
	}
	return out
}

func (s *VoucherStream) drawOne(isActive func(name string) bool) string {
	cands := s.candidates(isActive)
	if len(cands) == 0 {
		return ""
	}
	return cands[s.draw.IntN(len(cands))]
}

// Peek returns the first voucher this ante would offer, drawing it on first
// call and caching the result. Repeated Peek calls with no intervening Next
// return the same voucher without advancing the stream further.
func (s *VoucherStream) Peek(isActive func(name string) bool) string {
	if !s.peeked {
		s.peekedName = s.drawOne(isActive)
		s.peeked = true
	}
	return s.peekedName
}

// Next returns the next voucher offered: the cached Peek result if one is
// pending, otherwise a fresh draw. This is how the filter evaluator draws
// the Hieroglyph/Petroglyph bonus voucher (spec §4.3.1 step 4) after having
// already Peeked (and activated) the ante's first voucher.
func (s *VoucherStream) Next(isActive func(name string) bool) string {
	if s.peeked {
		s.peeked = false
		name := s.peekedName
		s.peekedName = ""
		return name
	}
	return s.drawOne(isActive)
}

// AnteFirstVoucher queries the opening voucher of vs's ante without an
// additional advance beyond the underlying Peek. Named separately to match
// spec §4.1's stream table; it is not a distinct cursor.
func AnteFirstVoucher(vs *VoucherStream, isActive func(name string) bool) string {
	return vs.Peek(isActive)
}
