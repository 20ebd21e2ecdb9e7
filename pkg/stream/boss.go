package stream

import (
	"github.com/dshills/seedscout/pkg/itemdata"
	"github.com/dshills/seedscout/pkg/rng"
)

// BossStream draws bosses in order, carrying state across antes. It must be
// constructed exactly once per seed (or per lane) — restarting it per ante
// would desynchronize it from every other seed's evaluation, per spec §4.3.3
// ("do not restart the stream per ante — carry state"). See DESIGN.md's
// resolution of the boss-stream-initialization open question.
type BossStream struct {
	draw  *rng.Stream
	table *itemdata.Table
	ante  int
}

// NewBossStream builds the boss stream starting at startingAnte (spec §4.1
// default is 1).
func NewBossStream(ctx *Context, startingAnte int) *BossStream {
	return &BossStream{
		draw:  rng.NewStream(ctx.SeedBytes, "boss", 0),
		table: ctx.Table,
		ante:  startingAnte,
	}
}

// Next draws the next boss in sequence, returning the ante it was drawn for.
func (s *BossStream) Next() (ante int, boss string) {
	bosses := s.table.Bosses()
	boss = bosses[s.draw.IntN(len(bosses))]
	ante = s.ante
	s.ante++
	return ante, boss
}
