package stream

import (
	"fmt"

	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/rng"
)

// ArcanaPackTarotStream draws the contents of Arcana packs one card at a
// time (spec §4.1's ArcanaPackTarotStream(ante)). Callers drive it exactly
// as many times as the pack's size dictates; pkg/filter always reads the
// maximum possible count (5, Mega) to keep parallel lanes aligned and masks
// out the positions a smaller pack doesn't actually have (DESIGN.md's
// resolution of the pack-size-divergence open question).
type ArcanaPackTarotStream struct {
	ctx  *Context
	draw *rng.Stream
}

// NewArcanaPackTarotStream builds the tarot-pack-contents stream for one
// Arcana pack. slot distinguishes multiple Arcana packs in the same ante's
// shop so that they draw independent contents instead of repeating the same
// sequence.
func NewArcanaPackTarotStream(ctx *Context, ante, slot int) *ArcanaPackTarotStream {
	base := rng.NewStream(ctx.SeedBytes, "arcana_pack", ante)
	return &ArcanaPackTarotStream{ctx: ctx, draw: base.Child(fmt.Sprintf("slot%d", slot))}
}

// Next draws the next tarot card in this pack. With probability
// Table.SoulChance(), it yields the Soul card instead — categorized
// SpectralCard even though it was drawn from a tarot slot, per
// pkg/itemdata's tarots fixture.
func (s *ArcanaPackTarotStream) Next() item.Item {
	if s.draw.Next() < s.ctx.Table.SoulChance() {
		return item.Item{Category: item.CategorySpectralCard, Name: "Soul"}
	}
	names := s.ctx.Table.Tarots()
	name := names[s.draw.IntN(len(names))]
	return item.Item{Category: item.CategoryTarotCard, Name: name, Edition: rollEdition(s.draw)}
}

// CelestialPackPlanetStream draws the contents of Celestial packs one card
// at a time (spec §4.1's CelestialPackPlanetStream(ante)). Planet cards
// never carry the Soul card: per spec §4.3.6, Soul only appears via Arcana
// or Spectral packs.
type CelestialPackPlanetStream struct {
	ctx  *Context
	draw *rng.Stream
}

// NewCelestialPackPlanetStream builds the planet-pack-contents stream for one
// Celestial pack, distinguished by slot the same way Arcana packs are.
func NewCelestialPackPlanetStream(ctx *Context, ante, slot int) *CelestialPackPlanetStream {
	base := rng.NewStream(ctx.SeedBytes, "celestial_pack", ante)
	return &CelestialPackPlanetStream{ctx: ctx, draw: base.Child(fmt.Sprintf("slot%d", slot))}
}

// Next draws the next planet card in this pack.
func (s *CelestialPackPlanetStream) Next() item.Item {
	names := s.ctx.Table.Planets()
	name := names[s.draw.IntN(len(names))]
	return item.Item{Category: item.CategoryPlanetCard, Name: name, Edition: rollEdition(s.draw)}
}

// SpectralPackSpectralStream draws the contents of Spectral packs one card
// at a time (spec §4.1's SpectralPackSpectralStream(ante)). Soul and Black
// Hole are ordinary members of the spectral table here — NeverInShop only
// restricts shop slots, not pack contents.
type SpectralPackSpectralStream struct {
	ctx  *Context
	draw *rng.Stream
}

// NewSpectralPackSpectralStream builds the spectral-pack-contents stream for
// one Spectral pack, distinguished by slot.
func NewSpectralPackSpectralStream(ctx *Context, ante, slot int) *SpectralPackSpectralStream {
	base := rng.NewStream(ctx.SeedBytes, "spectral_pack", ante)
	return &SpectralPackSpectralStream{ctx: ctx, draw: base.Child(fmt.Sprintf("slot%d", slot))}
}

// Next draws the next spectral card in this pack.
func (s *SpectralPackSpectralStream) Next() item.Item {
	names := s.ctx.Table.Spectrals()
	name := names[s.draw.IntN(len(names))]
	return item.Item{Category: item.CategorySpectralCard, Name: name, Edition: rollEdition(s.draw)}
}

// BuffoonPackJokerStream draws the contents of Buffoon (joker) packs one
// card at a time (spec §4.1's BuffoonPackJokerStream(ante)). Like shop
// jokers, legendary rarity never appears here directly.
type BuffoonPackJokerStream struct {
	ctx  *Context
	draw *rng.Stream
}

var buffoonRarityWeights = []float64{0.55, 0.32, 0.13}

// NewBuffoonPackJokerStream builds the joker-pack-contents stream for one
// Buffoon pack, distinguished by slot.
func NewBuffoonPackJokerStream(ctx *Context, ante, slot int) *BuffoonPackJokerStream {
	base := rng.NewStream(ctx.SeedBytes, "buffoon_pack", ante)
	return &BuffoonPackJokerStream{ctx: ctx, draw: base.Child(fmt.Sprintf("slot%d", slot))}
}

// Next draws the next joker in this pack.
func (s *BuffoonPackJokerStream) Next() item.Item {
	rIdx := s.draw.WeightedChoice(buffoonRarityWeights)
	if rIdx < 0 {
		rIdx = 0
	}
	rarity := item.Rarity(rIdx)
	edition := rollEdition(s.draw)
	stickers := rollStickers(s.draw)
	names := s.ctx.Table.JokersOfRarity(rarity)
	if len(names) == 0 {
		return item.Item{Category: item.CategoryJokerExcludedByStream}
	}
	name := names[s.draw.IntN(len(names))]
	return item.Item{Category: item.CategoryJoker, Name: name, Edition: edition, Stickers: stickers}
}

// StandardPackCardStream draws the contents of Standard packs one playing
// card at a time (spec §4.1's StandardPackCardStream(ante)). Only Standard
// packs ever yield playing cards (spec §4.3.7).
type StandardPackCardStream struct {
	ctx  *Context
	draw *rng.Stream
}

// NewStandardPackCardStream builds the playing-card-pack-contents stream for
// one Standard pack, distinguished by slot.
func NewStandardPackCardStream(ctx *Context, ante, slot int) *StandardPackCardStream {
	base := rng.NewStream(ctx.SeedBytes, "standard_pack", ante)
	return &StandardPackCardStream{ctx: ctx, draw: base.Child(fmt.Sprintf("slot%d", slot))}
}

// Next draws the next playing card in this pack: suit, rank, enhancement,
// edition, and seal, in that order.
func (s *StandardPackCardStream) Next() item.Item {
	return item.Item{
		Category:    item.CategoryPlayingCard,
		Suit:        rollSuit(s.draw),
		Rank:        rollRank(s.draw),
		Enhancement: rollEnhancement(s.draw),
		Edition:     rollEdition(s.draw),
		Seal:        rollSeal(s.draw),
	}
}
