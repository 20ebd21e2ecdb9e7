package item

import "fmt"

// Item is the tagged value every content stream produces: a category, a
// concrete name within that category, and the editions/stickers/playing-card
// fields that apply to it. Fields that don't apply to a category are left at
// their zero value.
type Item struct {
	Category    Category
	Name        string // concrete type within Category, e.g. "Blueprint", "Telescope"
	Edition     Edition
	Stickers    Sticker
	Suit        Suit
	Rank        Rank
	Enhancement Enhancement
	Seal        Seal
}

// String returns a human-readable representation of the item.
func (it Item) String() string {
	if it.Category == CategoryPlayingCard {
		return fmt.Sprintf("%s of %s[%s/%s]", it.Rank, it.Suit, it.Enhancement, it.Seal)
	}
	suffix := ""
	if it.Edition != EditionNone {
		suffix = " (" + it.Edition.String() + ")"
	}
	return fmt.Sprintf("%s:%s%s", it.Category, it.Name, suffix)
}

// IsExcluded reports whether this item represents a shop-joker slot the
// stream rolled but excluded rather than a concrete joker.
func (it Item) IsExcluded() bool {
	return it.Category == CategoryJokerExcludedByStream
}
