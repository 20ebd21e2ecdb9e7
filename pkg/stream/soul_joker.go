package stream

import "github.com/dshills/seedscout/pkg/rng"

// SoulJokerStream draws the legendary joker that would be granted by each
// successive Soul card found in packs (spec §4.1's SoulJokerStream(ante)).
// It is global across antes for one seed: construct it exactly once and
// call Next once per Soul (or Black Hole) card discovered, walking antes in
// increasing order. Per-ante reset is forbidden (spec §4.1).
type SoulJokerStream struct {
	ctx  *Context
	draw *rng.Stream
}

// NewSoulJokerStream builds the single, seed-wide soul joker stream.
func NewSoulJokerStream(ctx *Context) *SoulJokerStream {
	return &SoulJokerStream{ctx: ctx, draw: rng.NewStream(ctx.SeedBytes, "soul_joker", 0)}
}

// Next draws the legendary joker granted by the next discovered Soul card.
func (s *SoulJokerStream) Next() string {
	legendaries := s.ctx.Table.Legendaries()
	return legendaries[s.draw.IntN(len(legendaries))]
}
