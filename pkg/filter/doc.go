// Package filter implements the per-category vectorized predicates of spec
// §4.3: Voucher (voucher.go), Tag (tag.go), Boss (boss.go),
// Tarot/Planet/Spectral (consumable.go), Joker (joker.go), SoulJoker
// (souljoker.go), PlayingCard (playingcard.go), and the And/Or composition
// over them (evaluate.go). Each predicate consumes a Batch (8 seeds
// evaluated in lockstep) and a *clause.PreparedClause, returning a
// mask.Mask8 — bit i set means lane i's seed satisfies the clause.
// EvaluateAll is the entry point a caller outside this package should use:
// it groups a Filter's voucher clauses (across must, should, and mustNot
// alike) into one shared walk and dispatches everything else through
// Evaluate.
//
// count.go mirrors every predicate with a CountOccurrences entry point
// used by the scoring provider instead of the boolean evaluator — same
// cached streams, same draws, but returning how many times a clause
// matched rather than whether it matched at all (spec §4.5).
//
// Composition follows spec §4.3 exactly: AND across clauses in one
// category, OR across antes inside one clause, OR across values inside one
// clause's values list.
//
// The "vector" in this package is eight independent scalar evaluations held
// side by side in a Batch, not SIMD hardware lanes — the same
// array-of-scalars simplification pkg/mask and pkg/stream document, since
// neither Go's standard library nor any repo in the example corpus offers
// portable SIMD intrinsics.
package filter
