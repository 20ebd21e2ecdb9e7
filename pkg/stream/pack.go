package stream

import (
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/rng"
)

var packTypes = []item.PackType{
	item.PackArcana, item.PackCelestial, item.PackSpectral, item.PackBuffoon, item.PackStandard,
}

var packSizes = []item.PackSize{item.PackNormal, item.PackJumbo, item.PackMega}

// packSizeWeights favors Normal packs heavily, matching a typical shop's mix.
var packSizeWeights = []float64{0.70, 0.22, 0.08}

// BoosterPackStream draws the booster packs offered at one ante (spec
// §4.1's BoosterPackStream(ante)). Per spec §4.1's guaranteed-first-pack
// skip, when generatedFirstPack is true and ante >= 2 the first pack drawn
// at construction is discarded before the stream is handed to a caller.
type BoosterPackStream struct {
	draw *rng.Stream
}

// NewBoosterPackStream builds the pack stream for one ante, discarding the
// phantom first pack when generatedFirstPack is set and ante >= 2.
func NewBoosterPackStream(ctx *Context, ante int, generatedFirstPack bool) *BoosterPackStream {
	s := &BoosterPackStream{draw: rng.NewStream(ctx.SeedBytes, "pack", ante)}
	if generatedFirstPack && ante >= 2 {
		s.drawOne()
	}
	return s
}

func (s *BoosterPackStream) drawOne() (item.PackType, item.PackSize) {
	t := packTypes[s.draw.IntN(len(packTypes))]
	szIdx := s.draw.WeightedChoice(packSizeWeights)
	if szIdx < 0 {
		szIdx = 0
	}
	return t, packSizes[szIdx]
}

// Next draws the next booster pack offered this ante.
func (s *BoosterPackStream) Next() (item.PackType, item.PackSize) {
	return s.drawOne()
}
