// Package runstate tracks the accumulated effects of prior generation within
// a single seed's evaluation: activated vouchers, owned jokers, the
// "showman" flag, and cached boss draws (spec §4.2).
//
// Scalar evaluates one seed and tracks owned jokers; Vector evaluates 8
// seeds in lockstep and only tracks the state the vectorized filter stage
// actually needs (activated vouchers per lane, showman per lane) — any
// predicate that needs owned-joker tracking forces a scalar fallback
// through the individual verifier (pkg/verify).
package runstate
