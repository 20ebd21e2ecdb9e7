package clause

import (
	"fmt"

	"github.com/dshills/seedscout/pkg/item"
)

// defaultAntes is substituted when a clause omits "antes" (spec §6.1).
var defaultAntes = []int{1, 2, 3, 4, 5, 6, 7, 8}

// PreparedClause is the immutable, precomputed form of one user clause
// (spec §3's "Prepared clause"). Constructed once per search by Prepare and
// never mutated afterward; the filter evaluator and scoring provider only
// ever read it.
type PreparedClause struct {
	Kind    Kind
	TagSlot item.TagSlot

	Values   []string // concrete enum values; OR-matched when len > 1
	Wildcard Wildcard  // joker/souljoker rarity-or-any wildcard; WildcardNone if Values is used instead

	AntesMask     uint64
	ShopSlotsMask uint64
	PackSlotsMask uint8 // 6 bits: pack positions 0..5

	SourceShop        bool
	SourcePacks       bool
	SourceTags        bool
	SourceRequireMega bool

	HasEdition bool
	Edition    item.Edition
	Stickers   item.Sticker

	HasSuit bool
	Suit    item.Suit
	HasRank bool
	Rank    item.Rank

	HasEnhancement bool
	Enhancement    item.Enhancement
	HasSeal        bool
	Seal           item.Seal

	Score int
	HasMin bool
	Min    int

	Children []*PreparedClause // And/Or only
}

// Filter is the prepared, thread-shareable clause tree for one search
// (spec §6: "prepared-clause constructor... returns the thread-shareable
// immutable clause tree").
type Filter struct {
	Name    string
	Deck    item.Deck
	Stake   item.Stake
	Must    []*PreparedClause
	Should  []*PreparedClause
	MustNot []*PreparedClause
}

// bitmaskFromInts folds a list of non-negative indices into a bitmask,
// erroring if any index would overflow the given bit width.
func bitmaskFromInts(indices []int, bits int) (uint64, error) {
	var mask uint64
	for _, i := range indices {
		if i < 0 || i >= bits {
			return 0, fmt.Errorf("clause: index %d out of range [0,%d)", i, bits)
		}
		mask |= 1 << uint(i)
	}
	return mask, nil
}

// Prepare converts a RawConfig into an immutable Filter, rejecting
// configuration errors up front (spec §7): unknown enum values, both
// `value` and `values` present on the same clause, and Perkeo requested
// under type `joker` instead of `souljoker`.
func Prepare(cfg *RawConfig) (*Filter, error) {
	deck, err := parseDeck(cfg.Deck)
	if err != nil {
		return nil, err
	}
	stake, err := parseStake(cfg.Stake)
	if err != nil {
		return nil, err
	}

	f := &Filter{Name: cfg.Name, Deck: deck, Stake: stake}

	for i, rc := range cfg.Must {
		pc, err := prepareClause(rc)
		if err != nil {
			return nil, fmt.Errorf("clause: must[%d]: %w", i, err)
		}
		f.Must = append(f.Must, pc)
	}
	for i, rc := range cfg.Should {
		pc, err := prepareClause(rc)
		if err != nil {
			return nil, fmt.Errorf("clause: should[%d]: %w", i, err)
		}
		f.Should = append(f.Should, pc)
	}
	for i, rc := range cfg.MustNot {
		pc, err := prepareClause(rc)
		if err != nil {
			return nil, fmt.Errorf("clause: mustNot[%d]: %w", i, err)
		}
		f.MustNot = append(f.MustNot, pc)
	}
	return f, nil
}

func prepareClause(rc RawClause) (*PreparedClause, error) {
	kind, tagSlot, err := parseKind(rc.Type)
	if err != nil {
		return nil, err
	}

	pc := &PreparedClause{Kind: kind, TagSlot: tagSlot, Score: 1}

	if rc.Score != nil {
		pc.Score = *rc.Score
	}
	if rc.Min != nil {
		pc.HasMin = true
		pc.Min = *rc.Min
	}

	antes := rc.Antes
	if len(antes) == 0 && kind != KindAnd && kind != KindOr {
		antes = defaultAntes
	}
	mask, err := bitmaskFromInts(antes, 64)
	if err != nil {
		return nil, err
	}
	pc.AntesMask = mask

	if kind == KindAnd || kind == KindOr {
		// An empty And/Or is unsatisfiable but not a configuration error
		// (spec §4.3.8): it simply never matches.
		for i, child := range rc.Clauses {
			cpc, err := prepareClause(child)
			if err != nil {
				return nil, fmt.Errorf("clauses[%d]: %w", i, err)
			}
			pc.Children = append(pc.Children, cpc)
		}
		return pc, nil
	}

	if rc.Value != "" && len(rc.Values) > 0 {
		return nil, fmt.Errorf("clause: both value and values set")
	}

	values := rc.Values
	if rc.Value != "" {
		values = []string{rc.Value}
	}

	if kind == KindJoker || kind == KindSoulJoker {
		if len(values) == 1 {
			if w, ok := parseJokerWildcard(values[0]); ok {
				pc.Wildcard = w
				values = nil
			}
		}
		for _, v := range values {
			if v == "Perkeo" && kind == KindJoker {
				return nil, fmt.Errorf("clause: Perkeo must be filtered as type souljoker, not joker")
			}
		}
	}
	if kind == KindTarotCard || kind == KindPlanetCard || kind == KindSpectralCard {
		// "Any"/"*" means any card of this clause's category (spec §4.3.4):
		// an empty Values list already carries that meaning for consumable
		// matching, so the wildcard is just an empty Values list here rather
		// than a dedicated Wildcard value.
		if len(values) == 1 && isAnyValue(values[0]) {
			values = nil
		}
	}
	pc.Values = values

	if rc.Edition != "" {
		ed, err := parseEdition(rc.Edition)
		if err != nil {
			return nil, err
		}
		pc.HasEdition = true
		pc.Edition = ed
	}
	if len(rc.Stickers) > 0 {
		st, err := parseStickers(rc.Stickers)
		if err != nil {
			return nil, err
		}
		pc.Stickers = st
	}

	if kind == KindPlayingCard {
		suit, wild, err := parseSuit(rc.Suit)
		if err != nil {
			return nil, err
		}
		pc.HasSuit, pc.Suit = !wild, suit

		rank, wild, err := parseRank(rc.Rank)
		if err != nil {
			return nil, err
		}
		pc.HasRank, pc.Rank = !wild, rank

		enh, wild, err := parseEnhancement(rc.Enhancement)
		if err != nil {
			return nil, err
		}
		pc.HasEnhancement, pc.Enhancement = !wild, enh

		seal, wild, err := parseSeal(rc.Seal)
		if err != nil {
			return nil, err
		}
		pc.HasSeal, pc.Seal = !wild, seal
	}

	src := rc.mergedSources()
	pc.SourceTags = src.Tags
	pc.SourceRequireMega = src.RequireMega
	pc.SourceShop = len(src.ShopSlots) > 0
	pc.SourcePacks = len(src.PackSlots) > 0
	// Categories without an explicit sources block default to both shop and
	// pack enabled over the full slot range, except souljoker, which
	// defaults shop-sources disabled (spec §9 "legendary-in-shop trap":
	// legendary jokers can never be sold, so a souljoker clause querying
	// shop slots would never match and is almost certainly a mistake).
	if src.ShopSlots == nil && src.PackSlots == nil {
		if kind != KindSoulJoker {
			pc.SourceShop = true
		}
		pc.SourcePacks = true
	}

	shopMask, err := bitmaskFromInts(src.ShopSlots, 64)
	if err != nil {
		return nil, err
	}
	pc.ShopSlotsMask = shopMask
	if pc.SourceShop && shopMask == 0 {
		pc.ShopSlotsMask = ^uint64(0)
	}

	packMask, err := bitmaskFromInts(src.PackSlots, 6)
	if err != nil {
		return nil, err
	}
	pc.PackSlotsMask = uint8(packMask)
	if pc.SourcePacks && packMask == 0 {
		pc.PackSlotsMask = 0x3F
	}

	return pc, nil
}
