package stream

import (
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/rng"
)

// ShopExclusion is a bitflag of item categories to omit from a shop slot
// draw (spec §4.1's "exclusions is a bitflag of categories to omit").
type ShopExclusion uint8

const (
	ExcludeTarot ShopExclusion = 1 << iota
	ExcludePlanet
	ExcludeSpectral
)

// has reports whether e excludes cat.
func (e ShopExclusion) has(flag ShopExclusion) bool { return e&flag != 0 }

// ShopItemStream draws the non-joker consumable slots of a shop (tarot,
// planet, and — for the Ghost deck — spectral cards), per spec §4.1's
// ShopItemStream(ante, exclusions).
type ShopItemStream struct {
	ctx  *Context
	draw *rng.Stream
	excl ShopExclusion
}

// NewShopItemStream builds the shop-item stream for one ante.
func NewShopItemStream(ctx *Context, ante int, excl ShopExclusion) *ShopItemStream {
	return &ShopItemStream{ctx: ctx, draw: rng.NewStream(ctx.SeedBytes, "shop_item", ante), excl: excl}
}

func (s *ShopItemStream) categories() []item.Category {
	var cats []item.Category
	if !s.excl.has(ExcludeTarot) {
		cats = append(cats, item.CategoryTarotCard)
	}
	if !s.excl.has(ExcludePlanet) {
		cats = append(cats, item.CategoryPlanetCard)
	}
	// Ghost deck unlocks spectral shop slots at every ante (DESIGN.md open
	// question 2).
	// TODO: confirm whether real play tapers this off by ante; if so this
	// becomes a per-ante table lookup instead of an unconditional include.
	if !s.excl.has(ExcludeSpectral) && s.ctx.Deck == item.DeckGhost {
		cats = append(cats, item.CategorySpectralCard)
	}
	if len(cats) == 0 {
		cats = []item.Category{item.CategoryTarotCard}
	}
	return cats
}

func (s *ShopItemStream) nameFor(cat item.Category) string {
	tbl := s.ctx.Table
	switch cat {
	case item.CategoryTarotCard:
		names := tbl.Tarots()
		return names[s.draw.IntN(len(names))]
	case item.CategorySpectralCard:
		// Soul and Black Hole never appear in shop slots (spec §4.3.4).
		names := nonShopSpectrals(tbl)
		return names[s.draw.IntN(len(names))]
	default:
		names := tbl.Planets()
		return names[s.draw.IntN(len(names))]
	}
}

func nonShopSpectrals(tbl interface {
	Spectrals() []string
	NeverInShop(string) bool
}) []string {
	all := tbl.Spectrals()
	out := make([]string, 0, len(all))
	for _, name := range all {
		if !tbl.NeverInShop(name) {
			out = append(out, name)
		}
	}
	return out
}

// Next draws the next shop slot's item: a category chosen uniformly among
// the categories not excluded, then a concrete name, then an edition roll.
func (s *ShopItemStream) Next() item.Item {
	cats := s.categories()
	cat := cats[s.draw.IntN(len(cats))]
	name := s.nameFor(cat)
	return item.Item{Category: cat, Name: name, Edition: rollEdition(s.draw)}
}
