// Package rng implements the low-level deterministic PRNG primitive that every
// content-generation stream in this module is layered on top of.
//
// # Overview
//
// The core treats the primitive as an external contract (see spec §6):
//
//	(seed_bytes, domain_tag, ante, counter) -> uniform double in [0, 1)
//
// Two distinct calls with the same four inputs must always return the same
// value, and the mapping must be indistinguishable from uniform noise across
// domains and counters. This package derives a per-(seed, domain, ante) root
// via HMAC-SHA256 keyed on the seed bytes, then finalizes each counter with a
// SplitMix64 step so that advancing a stream is a couple of integer ops, not
// a fresh hash.
//
// # Streams
//
// [Stream] wraps the primitive as an owned, monotonically advancing cursor:
// every higher-level content stream in package stream holds exactly one
// Stream value and never shares or aliases it with another consumer. Two
// logical consumers of "the same" generation (e.g. two clauses both
// inspecting ante-1 shop jokers) must be wired to literally the same *Stream
// instance, or constructed from identical (seed, domain, ante) — see the
// stream-desync hazard described in spec §4.1 and §4.6.
//
// # Determinism and isolation
//
// Domain tags (e.g. "voucher", "tag", "shop_item") keep unrelated streams
// independent even though they share a seed, the same way the dungeon
// generator derives one RNG per pipeline stage from a shared master seed.
package rng
