// Package item defines the data model for everything the content-generation
// streams can produce: jokers, tarot/planet/spectral cards, vouchers, tags,
// boss blinds, booster packs, and playing cards.
//
// A [Category] is a small, fixed enumeration (spec §3). The concrete value
// within a category (which joker, which voucher, ...) is carried as a plain
// string name rather than an exhaustive Go constant for every game item —
// the full enumeration tables are an external collaborator (spec §6) with
// hundreds of entries that vary by game version; package itemdata supplies a
// representative embedded table of them. Validating a name against the
// active table is the itemdata package's job, not this one's: Item itself is
// a dumb, always-concrete value, never a wildcard.
package item
