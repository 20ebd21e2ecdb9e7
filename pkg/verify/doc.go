// Package verify re-runs a prepared Filter's must/mustNot clauses against
// one seed at lane width 1, using the exact same stream and predicate code
// as pkg/filter's vectorized path (spec §4.4). It is the authoritative
// per-seed check. Every lane of a vectorized Batch draws from its own
// streams and caches, and the predicates treat pack sizes and the
// soul-joker draw the same way at either width, so the verifier reaches the
// same answer for a seed that its lane reached in the vectorized pass.
package verify
