package search

import "fmt"

// DefaultAlphabet is the fixed alphabet seeds are drawn from (spec §3's
// "Seed ... drawn from a fixed alphabet; treat as opaque"): digits and
// uppercase letters, excluding 0/O/1/I/L to avoid characters a human
// transcribing a seed by hand could confuse.
const DefaultAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// SeedLength is the fixed seed width (spec §3).
const SeedLength = 8

// SeedRangeIterator yields successive seeds to search. Next returns ok ==
// false once the range is exhausted; callers must stop calling it at that
// point. Implementations are not required to be safe for concurrent use —
// spec §5 assigns one seed range to one worker.
type SeedRangeIterator interface {
	Next() (seed []byte, ok bool)
}

// SequentialIterator walks consecutive seeds in alphabet order, treating
// each seed as a base-len(alphabet) number the way an odometer advances:
// the rightmost character advances fastest and carries into its left
// neighbor on overflow. It starts at Start and stops after Count seeds, or
// after the alphabet's last seed if that comes first (or Count is negative).
type SequentialIterator struct {
	alphabet []byte
	cur      []byte
	index    map[byte]int
	remain   int64
	started  bool
}

// NewSequentialIterator builds an iterator beginning at start (an 8-byte
// seed already drawn from alphabet) and yielding count seeds in sequence.
// A negative count means "run until the alphabet range wraps past start",
// i.e. exactly len(alphabet)^8 - offset(start) seeds; a positive count also
// stops there if it has not run out first.
func NewSequentialIterator(start string, alphabet string, count int64) (*SequentialIterator, error) {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	if len(start) != SeedLength {
		return nil, fmt.Errorf("search: seed %q must be %d characters", start, SeedLength)
	}
	idx := make(map[byte]int, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		idx[alphabet[i]] = i
	}
	cur := make([]byte, SeedLength)
	for i := 0; i < SeedLength; i++ {
		pos, ok := idx[start[i]]
		if !ok {
			return nil, fmt.Errorf("search: seed %q contains a character outside the alphabet", start)
		}
		cur[i] = byte(pos)
	}
	return &SequentialIterator{
		alphabet: []byte(alphabet),
		cur:      cur,
		index:    idx,
		remain:   count,
	}, nil
}

// Next returns the next seed in sequence.
func (it *SequentialIterator) Next() ([]byte, bool) {
	if it.remain == 0 {
		return nil, false
	}
	if !it.started {
		it.started = true
	} else {
		if !it.advance() {
			return nil, false
		}
	}
	if it.remain > 0 {
		it.remain--
	}
	seed := make([]byte, SeedLength)
	for i, d := range it.cur {
		seed[i] = it.alphabet[d]
	}
	return seed, true
}

// advance increments cur by one in base len(alphabet), carrying right to
// left like an odometer. It returns false if the range wrapped past the
// alphabet's maximum seed (all positions at their top digit).
func (it *SequentialIterator) advance() bool {
	base := len(it.alphabet)
	for i := SeedLength - 1; i >= 0; i-- {
		it.cur[i]++
		if int(it.cur[i]) < base {
			return true
		}
		it.cur[i] = 0
	}
	return false
}

// IndexRangeIterator walks clause.SeedRangeCfg's external seed-indexing
// scheme directly: index i maps to the base-len(alphabet) encoding of i,
// zero-padded to SeedLength with the alphabet's own zero digit. This is
// what cmd/seedscout builds from a RunConfig, since a RunConfig's
// seedRange is a plain uint64 pair, not a seed string.
type IndexRangeIterator struct {
	alphabet []byte
	next     uint64
	end      uint64 // exclusive; unbounded (alphabet^SeedLength) if 0
	limit    uint64
}

// NewIndexRangeIterator builds an iterator over [start, end) indices. end
// == 0 means unbounded: it runs until the index space wraps past
// len(alphabet)^SeedLength.
func NewIndexRangeIterator(start, end uint64, alphabet string) (*IndexRangeIterator, error) {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("search: alphabet must not be empty")
	}
	limit := uint64(1)
	overflowed := false
	for i := 0; i < SeedLength; i++ {
		next := limit * uint64(len(alphabet))
		if limit != 0 && next/uint64(len(alphabet)) != limit {
			overflowed = true
			break
		}
		limit = next
	}
	if overflowed {
		limit = 0 // wraps the full uint64 range; treated as "no cap" below
	}
	if end != 0 && end < start {
		return nil, fmt.Errorf("search: end (%d) must be >= start (%d)", end, start)
	}
	if limit != 0 && end > limit {
		return nil, fmt.Errorf("search: end (%d) exceeds the alphabet's %d-seed space", end, limit)
	}
	return &IndexRangeIterator{alphabet: []byte(alphabet), next: start, end: end, limit: limit}, nil
}

// Next returns the seed for the current index and advances it.
func (it *IndexRangeIterator) Next() ([]byte, bool) {
	if it.end != 0 && it.next >= it.end {
		return nil, false
	}
	if it.limit != 0 && it.next >= it.limit {
		return nil, false
	}
	seed := seedFromIndex(it.next, it.alphabet)
	it.next++
	return seed, true
}

// seedFromIndex encodes index as a SeedLength-wide base-len(alphabet)
// number using alphabet's digits, most significant digit first.
func seedFromIndex(index uint64, alphabet []byte) []byte {
	base := uint64(len(alphabet))
	seed := make([]byte, SeedLength)
	for i := SeedLength - 1; i >= 0; i-- {
		seed[i] = alphabet[index%base]
		index /= base
	}
	return seed
}
