package clause

import (
	"fmt"
	"strings"

	"github.com/dshills/seedscout/pkg/item"
)

// Kind is a prepared clause's category tag (spec §3's "category" field,
// spec §9's "tagged variants" sum type).
type Kind uint8

const (
	KindJoker Kind = iota
	KindSoulJoker
	KindVoucher
	KindTarotCard
	KindPlanetCard
	KindSpectralCard
	KindPlayingCard
	KindTag
	KindBoss
	KindAnd
	KindOr
)

func (k Kind) String() string {
	switch k {
	case KindJoker:
		return "joker"
	case KindSoulJoker:
		return "souljoker"
	case KindVoucher:
		return "voucher"
	case KindTarotCard:
		return "tarotcard"
	case KindPlanetCard:
		return "planetcard"
	case KindSpectralCard:
		return "spectralcard"
	case KindPlayingCard:
		return "playingcard"
	case KindTag:
		return "tag"
	case KindBoss:
		return "boss"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	default:
		return "unknown"
	}
}

// parseKind maps the wire "type" string to a Kind plus, for tag clauses,
// the tag slot the wire type string pins (tag/smallblindtag/bigblindtag all
// share Kind but differ in default TagSlot).
func parseKind(raw string) (Kind, item.TagSlot, error) {
	switch strings.ToLower(raw) {
	case "joker":
		return KindJoker, item.TagSlotAny, nil
	case "souljoker":
		return KindSoulJoker, item.TagSlotAny, nil
	case "voucher":
		return KindVoucher, item.TagSlotAny, nil
	case "tarotcard":
		return KindTarotCard, item.TagSlotAny, nil
	case "planetcard":
		return KindPlanetCard, item.TagSlotAny, nil
	case "spectralcard":
		return KindSpectralCard, item.TagSlotAny, nil
	case "playingcard":
		return KindPlayingCard, item.TagSlotAny, nil
	case "tag":
		return KindTag, item.TagSlotAny, nil
	case "smallblindtag":
		return KindTag, item.TagSlotSmallBlind, nil
	case "bigblindtag":
		return KindTag, item.TagSlotBigBlind, nil
	case "boss":
		return KindBoss, item.TagSlotAny, nil
	case "and":
		return KindAnd, item.TagSlotAny, nil
	case "or":
		return KindOr, item.TagSlotAny, nil
	default:
		return 0, 0, fmt.Errorf("clause: unknown clause type %q", raw)
	}
}

// Wildcard is the joker/souljoker rarity-or-any discriminator (spec §3).
type Wildcard uint8

const (
	WildcardNone Wildcard = iota
	WildcardAnyJoker
	WildcardAnyCommon
	WildcardAnyUncommon
	WildcardAnyRare
	WildcardAnyLegendary
)

// parseJokerWildcard recognizes the joker-only wildcard values (spec §6.1:
// "Any, AnyJoker, AnyCommon, AnyUncommon, AnyRare, AnyLegendary, *"). It
// returns WildcardNone, false for any string that isn't a wildcard, so the
// caller can fall through to treating it as a concrete joker name.
func parseJokerWildcard(s string) (Wildcard, bool) {
	switch s {
	case "Any", "AnyJoker", "*":
		return WildcardAnyJoker, true
	case "AnyCommon":
		return WildcardAnyCommon, true
	case "AnyUncommon":
		return WildcardAnyUncommon, true
	case "AnyRare":
		return WildcardAnyRare, true
	case "AnyLegendary":
		return WildcardAnyLegendary, true
	default:
		return WildcardNone, false
	}
}

// isAnyValue recognizes the generic category wildcard (spec §6.1: "Any, *")
// shared by clause types that don't have joker's rarity-tiered wildcards.
func isAnyValue(s string) bool {
	return s == "Any" || s == "*"
}

// Matches reports whether a joker's rarity satisfies this wildcard.
func (w Wildcard) Matches(r item.Rarity) bool {
	switch w {
	case WildcardAnyJoker:
		return true
	case WildcardAnyCommon:
		return r == item.RarityCommon
	case WildcardAnyUncommon:
		return r == item.RarityUncommon
	case WildcardAnyRare:
		return r == item.RarityRare
	case WildcardAnyLegendary:
		return r == item.RarityLegendary
	default:
		return false
	}
}

func parseEdition(s string) (item.Edition, error) {
	switch s {
	case "", "None":
		return item.EditionNone, nil
	case "Foil":
		return item.EditionFoil, nil
	case "Holographic":
		return item.EditionHolographic, nil
	case "Polychrome":
		return item.EditionPolychrome, nil
	case "Negative":
		return item.EditionNegative, nil
	default:
		return 0, fmt.Errorf("clause: unknown edition %q", s)
	}
}

func parseStickers(names []string) (item.Sticker, error) {
	var s item.Sticker
	for _, n := range names {
		switch n {
		case "Eternal":
			s |= item.StickerEternal
		case "Perishable":
			s |= item.StickerPerishable
		case "Rental":
			s |= item.StickerRental
		default:
			return 0, fmt.Errorf("clause: unknown sticker %q", n)
		}
	}
	return s, nil
}

func parseSuit(s string) (suit item.Suit, wild bool, err error) {
	switch s {
	case "", "Any", "*":
		return 0, true, nil
	case "Spades":
		return item.SuitSpades, false, nil
	case "Hearts":
		return item.SuitHearts, false, nil
	case "Clubs":
		return item.SuitClubs, false, nil
	case "Diamonds":
		return item.SuitDiamonds, false, nil
	default:
		return 0, false, fmt.Errorf("clause: unknown suit %q", s)
	}
}

var rankByName = map[string]item.Rank{
	"2": item.RankTwo, "3": item.RankThree, "4": item.RankFour, "5": item.RankFive,
	"6": item.RankSix, "7": item.RankSeven, "8": item.RankEight, "9": item.RankNine,
	"10": item.RankTen, "Jack": item.RankJack, "Queen": item.RankQueen,
	"King": item.RankKing, "Ace": item.RankAce,
	"Two": item.RankTwo, "Three": item.RankThree, "Four": item.RankFour, "Five": item.RankFive,
	"Six": item.RankSix, "Seven": item.RankSeven, "Eight": item.RankEight, "Nine": item.RankNine,
	"Ten": item.RankTen,
}

func parseRank(s string) (rank item.Rank, wild bool, err error) {
	if s == "" || s == "Any" || s == "*" {
		return 0, true, nil
	}
	r, ok := rankByName[s]
	if !ok {
		return 0, false, fmt.Errorf("clause: unknown rank %q", s)
	}
	return r, false, nil
}

func parseEnhancement(s string) (enh item.Enhancement, wild bool, err error) {
	switch s {
	case "", "Any", "*":
		return 0, true, nil
	case "None":
		return item.EnhancementNone, false, nil
	case "Bonus":
		return item.EnhancementBonus, false, nil
	case "Mult":
		return item.EnhancementMult, false, nil
	case "Wild":
		return item.EnhancementWild, false, nil
	case "Glass":
		return item.EnhancementGlass, false, nil
	case "Steel":
		return item.EnhancementSteel, false, nil
	case "Stone":
		return item.EnhancementStone, false, nil
	case "Gold":
		return item.EnhancementGold, false, nil
	case "Lucky":
		return item.EnhancementLucky, false, nil
	default:
		return 0, false, fmt.Errorf("clause: unknown enhancement %q", s)
	}
}

func parseSeal(s string) (seal item.Seal, wild bool, err error) {
	switch s {
	case "", "Any", "*":
		return 0, true, nil
	case "None":
		return item.SealNone, false, nil
	case "Red":
		return item.SealRed, false, nil
	case "Blue":
		return item.SealBlue, false, nil
	case "Gold":
		return item.SealGold, false, nil
	case "Purple":
		return item.SealPurple, false, nil
	default:
		return 0, false, fmt.Errorf("clause: unknown seal %q", s)
	}
}

func parseDeck(s string) (item.Deck, error) {
	switch s {
	case "", "Red":
		return item.DeckRed, nil
	case "Ghost":
		return item.DeckGhost, nil
	default:
		return 0, fmt.Errorf("clause: unknown deck %q", s)
	}
}

func parseStake(s string) (item.Stake, error) {
	switch s {
	case "", "White":
		return item.StakeWhite, nil
	case "Red":
		return item.StakeRed, nil
	case "Green":
		return item.StakeGreen, nil
	case "Black":
		return item.StakeBlack, nil
	case "Blue":
		return item.StakeBlue, nil
	case "Purple":
		return item.StakePurple, nil
	case "Orange":
		return item.StakeOrange, nil
	case "Gold":
		return item.StakeGold, nil
	default:
		return 0, fmt.Errorf("clause: unknown stake %q", s)
	}
}
