// Package stream implements the twelve deterministic PRNG content streams
// of spec §4.1: lazy, stateful, monotonically advancing sequences that turn
// a seed and an ante into shop items, booster packs, pack contents, tags,
// bosses, vouchers, and soul jokers.
//
// Every stream type owns exactly one pkg/rng.Stream (or a small number of
// child streams derived from it) and is never shared or copied between
// goroutines — the same ownership discipline dungo's generation
// pipeline uses for its per-stage RNGs. Advancing a stream out of the order
// the filter evaluator expects silently desynchronizes it from what a real
// run of the game would have produced; there is no runtime detector for
// this (spec §4.6), so every stream's doc comment states its advance
// contract precisely.
//
// This package only implements the scalar (single-seed) cursors. The
// vectorized batch-of-8 evaluation in pkg/filter is built by holding eight
// independent scalar streams side by side, the same "vector is an array of
// scalars" simplification pkg/mask documents for the lane mask itself —
// Go has no SIMD-width PRNG primitive in the standard library or anywhere
// in the example corpus.
package stream
