package stream

import (
	"github.com/dshills/seedscout/pkg/itemdata"
	"github.com/dshills/seedscout/pkg/rng"
)

// TagStream draws the small-blind tag then the big-blind tag for one ante
// (spec §4.1's TagStream(ante)). Next consumes both draws in one call,
// since the two tags are always read together.
type TagStream struct {
	draw  *rng.Stream
	table *itemdata.Table
}

// NewTagStream builds the tag stream for one ante.
func NewTagStream(ctx *Context, ante int) *TagStream {
	return &TagStream{draw: rng.NewStream(ctx.SeedBytes, "tag", ante), table: ctx.Table}
}

// Next draws (small-blind tag, big-blind tag), in that order.
func (s *TagStream) Next() (small, big string) {
	tags := s.table.Tags()
	small = tags[s.draw.IntN(len(tags))]
	big = tags[s.draw.IntN(len(tags))]
	return small, big
}
