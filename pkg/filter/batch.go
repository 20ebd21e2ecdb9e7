package filter

import (
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/mask"
	"github.com/dshills/seedscout/pkg/runstate"
	"github.com/dshills/seedscout/pkg/stream"
)

// Batch holds the eight lane-local contexts and cached shared streams for
// one 8-seed vectorized evaluation. Shared streams (voucher, pack, shop)
// are created once per (lane, ante), and the boss stream once per lane, the
// first time a clause needs them and reused by every other clause in the same category that touches
// the same ante, per spec §9's "create once per (batch, ante)" caching
// rule — never re-created, which would silently desynchronize the stream.
type Batch struct {
	Ctx      [mask.Width]*stream.Context
	RunState *runstate.Vector

	// GeneratedFirstPack controls the ante>=2 phantom-pack discard; it is
	// fixed for the lifetime of one Batch (spec §4.1).
	GeneratedFirstPack bool

	voucherStreams    [mask.Width]map[int]*stream.VoucherStream
	bossStreams       [mask.Width]*stream.BossStream
	bossCache         [mask.Width]map[int]string
	tagDraws          [mask.Width]map[int]tagDraw
	packStreams       [mask.Width]map[int]*stream.BoosterPackStream
	shopItemStreams   [mask.Width]map[int]*stream.ShopItemStream
	shopJokerStreams  [mask.Width]map[int]*stream.ShopJokerStream
	soulJokerStreams  [mask.Width]*stream.SoulJokerStream

	// contentCache holds the drawn items of one pack slot's contents, keyed
	// by (category, ante, slot), extended lazily up to whatever index a
	// caller has asked for so that every clause inspecting the same pack
	// shares one draw sequence instead of re-rolling it.
	contentCache  [mask.Width]map[contentKey][]item.Item
	cardStreams   [mask.Width]map[contentKey]cardStream

	// packSlotCache holds each ante's drawn (type, size) pairs per slot
	// index, extended lazily the same way contentCache is: every clause
	// that inspects pack slots at this ante shares one draw sequence.
	packSlotCache [mask.Width]map[int][]packDraw

	// shopSlotCache holds each ante's drawn shop-item slots the same way,
	// so that two consumable clauses sharing an ante's shop never redraw it.
	shopSlotCache [mask.Width]map[int][]item.Item

	// shopJokerSlotCache does the same for shop joker slots.
	shopJokerSlotCache [mask.Width]map[int][]item.Item

	// soulJokerCache caches the one global legendary draw per lane so every
	// souljoker clause shares it instead of re-drawing.
	soulJokerCache [mask.Width]*string
}

type packDraw struct {
	typ  item.PackType
	size item.PackSize
}

// contentKey identifies one pack slot's content stream within a lane.
type contentKey struct {
	cat  item.Category
	ante int
	slot int
}

// cardStream is the common shape of every pack-contents stream
// (ArcanaPackTarotStream, CelestialPackPlanetStream, ...): draw one item,
// advancing the stream.
type cardStream interface {
	Next() item.Item
}

// NewBatch builds a Batch for eight seeds. Any of the eight seed byte
// slices may be nil if fewer than 8 seeds are live in the final batch of a
// range; callers must not query a nil lane.
func NewBatch(seeds [mask.Width][]byte, ctxFactory func(seedBytes []byte) *stream.Context, generatedFirstPack bool) *Batch {
	b := &Batch{RunState: runstate.NewVector(), GeneratedFirstPack: generatedFirstPack}
	for i := 0; i < mask.Width; i++ {
		if seeds[i] == nil {
			continue
		}
		b.Ctx[i] = ctxFactory(seeds[i])
		b.voucherStreams[i] = make(map[int]*stream.VoucherStream)
		b.bossCache[i] = make(map[int]string)
		b.tagDraws[i] = make(map[int]tagDraw)
		b.packStreams[i] = make(map[int]*stream.BoosterPackStream)
		b.shopItemStreams[i] = make(map[int]*stream.ShopItemStream)
		b.shopJokerStreams[i] = make(map[int]*stream.ShopJokerStream)
		b.contentCache[i] = make(map[contentKey][]item.Item)
		b.cardStreams[i] = make(map[contentKey]cardStream)
		b.packSlotCache[i] = make(map[int][]packDraw)
		b.shopSlotCache[i] = make(map[int][]item.Item)
		b.shopJokerSlotCache[i] = make(map[int][]item.Item)
	}
	return b
}

// Live reports whether lane i has a seed loaded.
func (b *Batch) Live(lane int) bool { return b.Ctx[lane] != nil }

// LiveMask returns a mask with every lane that has a seed loaded set.
func (b *Batch) LiveMask() mask.Mask8 {
	var m mask.Mask8
	for i := 0; i < mask.Width; i++ {
		if b.Live(i) {
			m = m.Set(i, true)
		}
	}
	return m
}

func (b *Batch) voucherStream(lane, ante int) *stream.VoucherStream {
	if vs, ok := b.voucherStreams[lane][ante]; ok {
		return vs
	}
	vs := stream.NewVoucherStream(b.Ctx[lane], ante)
	b.voucherStreams[lane][ante] = vs
	return vs
}

func (b *Batch) bossStream(lane int) *stream.BossStream {
	if bs := b.bossStreams[lane]; bs != nil {
		return bs
	}
	bs := stream.NewBossStream(b.Ctx[lane], 1)
	b.bossStreams[lane] = bs
	return bs
}

// bossFor returns the boss drawn for ante, advancing the lane's shared
// BossStream forward (and caching every ante it passes through) as needed.
// BossStream never resets or seeks backward, so antes must be reachable by
// walking forward from wherever the stream currently sits.
func (b *Batch) bossFor(lane, ante int) string {
	if v, ok := b.bossCache[lane][ante]; ok {
		return v
	}
	bs := b.bossStream(lane)
	for {
		a, boss := bs.Next()
		b.bossCache[lane][a] = boss
		if a == ante {
			return boss
		}
	}
}

// tagDraw caches one ante's (small, big) blind tags so every clause that
// queries the same ante shares a single draw instead of re-advancing the
// stream per clause.
type tagDraw struct{ small, big string }

func (b *Batch) tagsFor(lane, ante int) (small, big string) {
	if d, ok := b.tagDraws[lane][ante]; ok {
		return d.small, d.big
	}
	ts := stream.NewTagStream(b.Ctx[lane], ante)
	small, big = ts.Next()
	b.tagDraws[lane][ante] = tagDraw{small: small, big: big}
	return small, big
}

func (b *Batch) packStream(lane, ante int) *stream.BoosterPackStream {
	if ps, ok := b.packStreams[lane][ante]; ok {
		return ps
	}
	ps := stream.NewBoosterPackStream(b.Ctx[lane], ante, b.GeneratedFirstPack)
	b.packStreams[lane][ante] = ps
	return ps
}

func (b *Batch) shopItemStream(lane, ante int) *stream.ShopItemStream {
	if ss, ok := b.shopItemStreams[lane][ante]; ok {
		return ss
	}
	ss := stream.NewShopItemStream(b.Ctx[lane], ante, 0)
	b.shopItemStreams[lane][ante] = ss
	return ss
}

func (b *Batch) shopJokerStream(lane, ante int) *stream.ShopJokerStream {
	if js, ok := b.shopJokerStreams[lane][ante]; ok {
		return js
	}
	js := stream.NewShopJokerStream(b.Ctx[lane], ante)
	b.shopJokerStreams[lane][ante] = js
	return js
}

func (b *Batch) soulJokerStream(lane int) *stream.SoulJokerStream {
	if sj := b.soulJokerStreams[lane]; sj != nil {
		return sj
	}
	sj := stream.NewSoulJokerStream(b.Ctx[lane])
	b.soulJokerStreams[lane] = sj
	return sj
}

// packSlot returns the (type, size) of the pack offered at one ante's slot,
// drawing and caching forward from the shared BoosterPackStream as needed.
// Never re-draws a slot already cached, so two clauses inspecting the same
// ante's pack slots never desynchronize the stream.
func (b *Batch) packSlot(lane, ante, slot int) packDraw {
	cache := b.packSlotCache[lane][ante]
	if slot < len(cache) {
		return cache[slot]
	}
	ps := b.packStream(lane, ante)
	for len(cache) <= slot {
		t, sz := ps.Next()
		cache = append(cache, packDraw{typ: t, size: sz})
	}
	b.packSlotCache[lane][ante] = cache
	return cache[slot]
}

// shopSlot returns the item offered at one ante's shop-item slot (tarot,
// planet, or Ghost-deck spectral), drawing and caching forward from the
// shared ShopItemStream as needed.
func (b *Batch) shopSlot(lane, ante, slot int) item.Item {
	cache := b.shopSlotCache[lane][ante]
	if slot < len(cache) {
		return cache[slot]
	}
	ss := b.shopItemStream(lane, ante)
	for len(cache) <= slot {
		cache = append(cache, ss.Next())
	}
	b.shopSlotCache[lane][ante] = cache
	return cache[slot]
}

// soulJoker returns the one legendary joker this lane's seed would yield
// from a Soul card, drawing and caching it once.
func (b *Batch) soulJoker(lane int) string {
	if b.soulJokerCache[lane] != nil {
		return *b.soulJokerCache[lane]
	}
	name := b.soulJokerStream(lane).Next()
	b.soulJokerCache[lane] = &name
	return name
}

// shopJokerSlot returns the item offered at one ante's shop-joker slot,
// drawing and caching forward from the shared ShopJokerStream as needed.
func (b *Batch) shopJokerSlot(lane, ante, slot int) item.Item {
	cache := b.shopJokerSlotCache[lane][ante]
	if slot < len(cache) {
		return cache[slot]
	}
	js := b.shopJokerStream(lane, ante)
	for len(cache) <= slot {
		cache = append(cache, js.Next())
	}
	b.shopJokerSlotCache[lane][ante] = cache
	return cache[slot]
}

// cardStreamFor returns the lazily-built contents stream for one pack slot,
// constructing the category-appropriate stream type the first time it is
// needed and reusing it for every later call with the same key.
func (b *Batch) cardStreamFor(lane int, cat item.Category, ante, slot int) cardStream {
	key := contentKey{cat: cat, ante: ante, slot: slot}
	if cs, ok := b.cardStreams[lane][key]; ok {
		return cs
	}
	var cs cardStream
	switch cat {
	case item.CategoryTarotCard:
		cs = stream.NewArcanaPackTarotStream(b.Ctx[lane], ante, slot)
	case item.CategoryPlanetCard:
		cs = stream.NewCelestialPackPlanetStream(b.Ctx[lane], ante, slot)
	case item.CategorySpectralCard:
		cs = stream.NewSpectralPackSpectralStream(b.Ctx[lane], ante, slot)
	case item.CategoryJoker:
		cs = stream.NewBuffoonPackJokerStream(b.Ctx[lane], ante, slot)
	case item.CategoryPlayingCard:
		cs = stream.NewStandardPackCardStream(b.Ctx[lane], ante, slot)
	}
	b.cardStreams[lane][key] = cs
	return cs
}

// contentCard returns the idx'th card drawn from one pack slot's contents,
// drawing and caching forward as needed so that every clause inspecting the
// same slot shares one draw sequence.
func (b *Batch) contentCard(lane int, cat item.Category, ante, slot, idx int) item.Item {
	key := contentKey{cat: cat, ante: ante, slot: slot}
	cache := b.contentCache[lane][key]
	for len(cache) <= idx {
		cache = append(cache, b.cardStreamFor(lane, cat, ante, slot).Next())
	}
	b.contentCache[lane][key] = cache
	return cache[idx]
}

// isVoucherActive adapts runstate.Vector's per-lane query to the
// func(string) bool shape stream.VoucherStream expects.
func (b *Batch) isVoucherActive(lane int) func(string) bool {
	return func(name string) bool { return b.RunState.IsVoucherActive(lane, name) }
}
