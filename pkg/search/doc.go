// Package search is the seed-range entry point: it batches a seed range
// into lanes of mask.Width, drives the vectorized filter pass, re-verifies
// every surviving lane scalar-style, scores the seeds that verify confirms,
// and emits results through the adaptive cutoff (spec §4, §5, §6). One
// Run call is meant to be handed to one worker by an external dispatcher;
// Run itself never fans out goroutines (spec §5).
package search
