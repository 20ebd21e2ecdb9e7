package stream

import (
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/rng"
)

// editionWeights is shared by every content stream that rolls an edition:
// None, Foil, Holographic, Polychrome, Negative, in that enum order.
var editionWeights = []float64{0.80, 0.12, 0.05, 0.02, 0.01}

// rollEdition draws an edition, advancing draw once.
func rollEdition(draw *rng.Stream) item.Edition {
	i := draw.WeightedChoice(editionWeights)
	if i < 0 {
		return item.EditionNone
	}
	return item.Edition(i)
}

// eternalChance, perishableChance and rentalChance are independent
// per-sticker activation chances, checked one roll per sticker so a joker
// can carry more than one.
const (
	eternalChance    = 0.03
	perishableChance = 0.03
	rentalChance     = 0.03
)

// rollStickers draws the three independent sticker rolls, advancing draw
// three times regardless of outcome so sticker-bearing and sticker-free
// jokers consume the stream identically.
func rollStickers(draw *rng.Stream) item.Sticker {
	var s item.Sticker
	if draw.Next() < eternalChance {
		s |= item.StickerEternal
	}
	if draw.Next() < perishableChance {
		s |= item.StickerPerishable
	}
	if draw.Next() < rentalChance {
		s |= item.StickerRental
	}
	return s
}

// rollSuit draws a uniform playing-card suit.
func rollSuit(draw *rng.Stream) item.Suit {
	return item.Suit(draw.IntN(4))
}

// rollRank draws a uniform playing-card rank (Two through Ace).
func rollRank(draw *rng.Stream) item.Rank {
	return item.Rank(draw.IntN(13))
}

// rollEnhancement draws a playing-card enhancement; None is heavily favored.
var enhancementWeights = []float64{0.75, 0.04, 0.04, 0.04, 0.03, 0.03, 0.03, 0.02, 0.02}

func rollEnhancement(draw *rng.Stream) item.Enhancement {
	i := draw.WeightedChoice(enhancementWeights)
	if i < 0 {
		return item.EnhancementNone
	}
	return item.Enhancement(i)
}

// rollSeal draws a playing-card seal; None is heavily favored.
var sealWeights = []float64{0.85, 0.06, 0.05, 0.03, 0.01}

func rollSeal(draw *rng.Stream) item.Seal {
	i := draw.WeightedChoice(sealWeights)
	if i < 0 {
		return item.SealNone
	}
	return item.Seal(i)
}
