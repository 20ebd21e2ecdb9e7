package item

// Category identifies the broad kind of item a stream produced.
type Category uint8

const (
	CategoryJoker Category = iota
	CategoryTarotCard
	CategoryPlanetCard
	CategorySpectralCard
	CategoryPlayingCard
	CategoryVoucher
	CategoryTag
	CategoryBossBlind
	CategoryBoosterPack
	// CategoryJokerExcludedByStream marks a shop-joker slot that the stream
	// rolled but excluded (e.g. rarity gating), per spec §3's data model.
	CategoryJokerExcludedByStream
)

func (c Category) String() string {
	switch c {
	case CategoryJoker:
		return "Joker"
	case CategoryTarotCard:
		return "TarotCard"
	case CategoryPlanetCard:
		return "PlanetCard"
	case CategorySpectralCard:
		return "SpectralCard"
	case CategoryPlayingCard:
		return "PlayingCard"
	case CategoryVoucher:
		return "Voucher"
	case CategoryTag:
		return "Tag"
	case CategoryBossBlind:
		return "BossBlind"
	case CategoryBoosterPack:
		return "BoosterPack"
	case CategoryJokerExcludedByStream:
		return "JokerExcludedByStream"
	default:
		return "Unknown"
	}
}

// Edition is a visual/mechanical variant applied to an item.
type Edition uint8

const (
	EditionNone Edition = iota
	EditionFoil
	EditionHolographic
	EditionPolychrome
	EditionNegative
)

func (e Edition) String() string {
	switch e {
	case EditionFoil:
		return "Foil"
	case EditionHolographic:
		return "Holographic"
	case EditionPolychrome:
		return "Polychrome"
	case EditionNegative:
		return "Negative"
	default:
		return "None"
	}
}

// Sticker is a joker sticker flag. Stickers are a bit-set the way spec §3
// describes: a fixed, small field list fits comfortably in a byte, unlike
// the variable-width packing deckcodec.bitio provides for arbitrary formats.
type Sticker uint8

const (
	StickerEternal Sticker = 1 << iota
	StickerPerishable
	StickerRental
)

// Has reports whether s includes every bit set in flag.
func (s Sticker) Has(flag Sticker) bool { return s&flag == flag }

// Rarity classifies a joker's rarity tier. Wildcard clauses (AnyCommon,
// AnyRare, ...) test against this field.
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityLegendary:
		return "Legendary"
	default:
		return "Common"
	}
}

// Suit is a playing card suit.
type Suit uint8

const (
	SuitSpades Suit = iota
	SuitHearts
	SuitClubs
	SuitDiamonds
)

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "Hearts"
	case SuitClubs:
		return "Clubs"
	case SuitDiamonds:
		return "Diamonds"
	default:
		return "Spades"
	}
}

// Rank is a playing card rank, 2 through Ace.
type Rank uint8

const (
	RankTwo Rank = iota
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
)

var rankNames = [...]string{
	"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace",
}

func (r Rank) String() string {
	if int(r) < len(rankNames) {
		return rankNames[r]
	}
	return "Unknown"
}

// Enhancement is a playing card enhancement.
type Enhancement uint8

const (
	EnhancementNone Enhancement = iota
	EnhancementBonus
	EnhancementMult
	EnhancementWild
	EnhancementGlass
	EnhancementSteel
	EnhancementStone
	EnhancementGold
	EnhancementLucky
)

func (e Enhancement) String() string {
	switch e {
	case EnhancementBonus:
		return "Bonus"
	case EnhancementMult:
		return "Mult"
	case EnhancementWild:
		return "Wild"
	case EnhancementGlass:
		return "Glass"
	case EnhancementSteel:
		return "Steel"
	case EnhancementStone:
		return "Stone"
	case EnhancementGold:
		return "Gold"
	case EnhancementLucky:
		return "Lucky"
	default:
		return "None"
	}
}

// Seal is a playing card seal.
type Seal uint8

const (
	SealNone Seal = iota
	SealRed
	SealBlue
	SealGold
	SealPurple
)

func (s Seal) String() string {
	switch s {
	case SealRed:
		return "Red"
	case SealBlue:
		return "Blue"
	case SealGold:
		return "Gold"
	case SealPurple:
		return "Purple"
	default:
		return "None"
	}
}

// Deck selects the starting deck, which can change shop/pack generation
// rules (spec SPEC_FULL §3.1 — Ghost deck unlocks spectral shop slots).
type Deck uint8

const (
	DeckRed Deck = iota
	DeckGhost
)

// Stake selects the difficulty stake. It is carried on stream.Context; no
// stream's draws depend on it (spec SPEC_FULL §3.1).
type Stake uint8

const (
	StakeWhite Stake = iota
	StakeRed
	StakeGreen
	StakeBlack
	StakeBlue
	StakePurple
	StakeOrange
	StakeGold
)

// PackType identifies a booster pack's contents category.
type PackType uint8

const (
	PackArcana PackType = iota
	PackCelestial
	PackSpectral
	PackBuffoon
	PackStandard
)

func (p PackType) String() string {
	switch p {
	case PackCelestial:
		return "Celestial"
	case PackSpectral:
		return "Spectral"
	case PackBuffoon:
		return "Buffoon"
	case PackStandard:
		return "Standard"
	default:
		return "Arcana"
	}
}

// PackSize determines how many cards a booster pack holds.
type PackSize uint8

const (
	PackNormal PackSize = iota
	PackJumbo
	PackMega
)

// Count returns the number of contents this pack size holds (spec §3).
func (p PackSize) Count() int {
	switch p {
	case PackJumbo:
		return 3
	case PackMega:
		return 5
	default:
		return 2
	}
}

func (p PackSize) String() string {
	switch p {
	case PackJumbo:
		return "Jumbo"
	case PackMega:
		return "Mega"
	default:
		return "Normal"
	}
}

// TagSlot identifies which per-ante tag position a clause targets.
type TagSlot uint8

const (
	TagSlotAny TagSlot = iota
	TagSlotSmallBlind
	TagSlotBigBlind
)
