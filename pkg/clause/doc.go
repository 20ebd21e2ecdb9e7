// Package clause implements the external filter-spec shape (spec §6.1) and
// the prepared, immutable clause tree the filter evaluator actually walks.
//
// RawConfig/RawClause mirror the JSON wire format exactly. Prepare converts
// a RawConfig into a Filter: every ante/shop-slot/pack-slot list becomes a
// precomputed bitmask, every enum string becomes a parsed constant, and
// configuration mistakes (unknown enum, both value and values set, Perkeo
// requested as a plain joker) are rejected once, before a search ever
// starts, rather than checked per seed on the hot path (spec §7).
//
// RunConfig is an additive operational wrapper (YAML, not JSON) used by
// cmd/seedscout to bundle a filter spec reference together with run-level
// knobs — seed range, worker count, cutoff, result sink, status address —
// the same way dungeon.Config bundled generation knobs for one CLI run.
package clause
