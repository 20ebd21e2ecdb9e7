package stream

import (
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/rng"
)

// shopRarityWeights covers Common, Uncommon, Rare in that order. Legendary
// jokers never appear in shop slots directly — spec's glossary entry for
// Joker: "Legendary jokers appear only via the Soul card" — so the shop
// joker stream's rarity roll has no legendary branch at all.
var shopRarityWeights = []float64{0.70, 0.25, 0.05}

// ShopJokerStream draws the joker (or excluded-slot marker) offered at each
// shop joker position for one ante (spec §4.1's ShopJokerStream(ante)).
type ShopJokerStream struct {
	ctx  *Context
	draw *rng.Stream
}

// NewShopJokerStream builds the shop-joker stream for one ante.
func NewShopJokerStream(ctx *Context, ante int) *ShopJokerStream {
	return &ShopJokerStream{ctx: ctx, draw: rng.NewStream(ctx.SeedBytes, "shop_joker", ante)}
}

// Next draws the next shop joker slot. It always consumes a rarity roll, an
// edition roll and the three sticker rolls in that order, even when the
// slot turns out to be excluded; the name roll follows only when the rolled
// rarity has jokers to name.
func (s *ShopJokerStream) Next() item.Item {
	rIdx := s.draw.WeightedChoice(shopRarityWeights)
	if rIdx < 0 {
		rIdx = 0
	}
	rarity := item.Rarity(rIdx)
	names := s.ctx.Table.JokersOfRarity(rarity)
	edition := rollEdition(s.draw)
	stickers := rollStickers(s.draw)
	if len(names) == 0 {
		return item.Item{Category: item.CategoryJokerExcludedByStream}
	}
	name := names[s.draw.IntN(len(names))]
	return item.Item{Category: item.CategoryJoker, Name: name, Edition: edition, Stickers: stickers}
}
