// Package itemdata supplies the enumeration and rate tables that spec §6
// names as an external collaborator the core consumes rather than defines:
// fixed arrays mapping indices to concrete item names, plus the one rate
// they hold, the chance that an Arcana pack slot yields the Soul card. The
// other draw weights are constants in pkg/stream; none varies with stake.
//
// The tables are embedded YAML, loaded once at package init the way
// dungeon.LoadConfig loads a YAML configuration file. They are a
// representative subset of a real game's content (dozens, not hundreds, of
// entries per category) — enough to exercise every rarity tier, every
// wildcard, and the soul-joker path, without attempting to be an exhaustive
// port of the source game's full item list.
package itemdata
