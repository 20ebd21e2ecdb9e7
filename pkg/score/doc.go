// Package score implements the scoring provider (spec §4.5): given a seed
// that has already survived the vectorized filter and the individual
// verifier, it builds a fresh scalar run on its own Batch, re-verifies must
// clauses, rejects on mustNot, and tallies should clauses into a
// total_score gated by an adaptive cutoff (Cutoff).
//
// Scoring never reuses the Batch the verifier built: spec §4.5 step 1 is
// "construct a fresh scalar run state", so voucher activation and every
// other shared-stream cache starts over rather than risking a second walk
// over streams the verifier's Batch already advanced.
package score
