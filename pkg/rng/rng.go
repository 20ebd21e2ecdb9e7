package rng

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
)

// splitMixGamma is Knuth's golden-ratio increment, the standard SplitMix64 step size.
const splitMixGamma = 0x9E3779B97F4A7C15

// Primitive implements the core's external PRNG contract: a pure function of
// (seedBytes, domain, ante, counter) returning a uniform float64 in [0, 1).
// Repeated calls with identical inputs always agree bit-for-bit.
func Primitive(seedBytes []byte, domain string, ante int, counter uint64) float64 {
	root := domainRoot(seedBytes, domain, ante)
	return splitMix64(root + counter*splitMixGamma)
}

// domainRoot derives a 64-bit root for one (seed, domain, ante) triple via
// HMAC-SHA256 keyed on the seed. The root is cheap to cache per-stream so
// that advancing the stream only costs a SplitMix64 finalization per draw.
func domainRoot(seedBytes []byte, domain string, ante int) uint64 {
	h := hmac.New(sha256.New, seedBytes)
	h.Write([]byte(domain))
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(ante)))
	h.Write(buf[:])
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum[:8])
}

// splitMix64 finalizes a 64-bit state into a uniform float64 in [0, 1).
func splitMix64(state uint64) float64 {
	z := state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return float64(z>>11) / (1 << 53)
}

// Stream is an owned, monotonically advancing cursor over the PRNG primitive
// for one (seed, domain, ante) triple. It is not safe for concurrent use;
// each consumer (scalar seed or vector lane) holds its own Stream.
type Stream struct {
	root    uint64
	counter uint64
}

// NewStream creates a Stream for the given seed, domain tag, and ante.
// Two Streams built from identical arguments produce identical sequences.
func NewStream(seedBytes []byte, domain string, ante int) *Stream {
	return &Stream{root: domainRoot(seedBytes, domain, ante)}
}

// Counter returns the number of values drawn so far. Useful for asserting
// that two streams that are supposed to stay aligned have, in fact, advanced
// the same number of times.
func (s *Stream) Counter() uint64 {
	return s.counter
}

// Next draws the next uniform float64 in [0, 1) and advances the cursor.
func (s *Stream) Next() float64 {
	v := splitMix64(s.root + s.counter*splitMixGamma)
	s.counter++
	return v
}

// IntN draws a pseudo-random integer in [0, n), advancing the cursor once.
// Panics if n <= 0.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		panic("rng: IntN argument must be positive")
	}
	return int(s.Next() * float64(n))
}

// Bool draws a pseudo-random boolean, advancing the cursor once.
func (s *Stream) Bool() bool {
	return s.Next() < 0.5
}

// WeightedChoice selects an index from weights using weighted random
// selection, advancing the cursor once. Weights must be non-negative.
// Returns -1 if all weights are zero or weights is empty.
func (s *Stream) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("rng: WeightedChoice weights must be non-negative")
		}
		total += w
	}
	if total == 0 {
		return -1
	}

	target := s.Next() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Shuffle pseudo-randomizes the order of n elements in place via swap,
// using the Fisher-Yates algorithm. Advances the cursor n-1 times.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.IntN(i + 1)
		swap(i, j)
	}
}

// Child derives an independent sub-stream for a nested domain, e.g. walking
// from a per-ante stream into a per-pack-slot stream without disturbing the
// parent's counter. The child is isolated from the parent the same way two
// distinct top-level domains are isolated from each other.
func (s *Stream) Child(label string) *Stream {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], s.root)
	binary.LittleEndian.PutUint64(buf[8:], s.counter)
	return &Stream{root: domainRoot(buf[:], label, 0)}
}
