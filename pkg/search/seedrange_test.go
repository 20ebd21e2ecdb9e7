package search_test

import (
	"testing"

	"github.com/dshills/seedscout/pkg/search"
)

func TestSequentialIteratorAdvancesRightmostFirst(t *testing.T) {
	it, err := search.NewSequentialIterator("22222222", search.DefaultAlphabet, 3)
	if err != nil {
		t.Fatal(err)
	}
	first, ok := it.Next()
	if !ok || string(first) != "22222222" {
		t.Fatalf("first = %q, ok=%v", first, ok)
	}
	second, ok := it.Next()
	if !ok || string(second) != "22222223" {
		t.Fatalf("second = %q, ok=%v", second, ok)
	}
	third, ok := it.Next()
	if !ok || string(third) != "22222224" {
		t.Fatalf("third = %q, ok=%v", third, ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatal("expected iterator to stop after count seeds")
	}
}

func TestSequentialIteratorCarries(t *testing.T) {
	alphabet := search.DefaultAlphabet
	last := alphabet[len(alphabet)-1]
	start := string([]byte{
		'2', '2', '2', '2', '2', '2', '2', last,
	})
	it, err := search.NewSequentialIterator(start, alphabet, 2)
	if err != nil {
		t.Fatal(err)
	}
	first, _ := it.Next()
	if string(first) != start {
		t.Fatalf("first = %q, want %q", first, start)
	}
	second, ok := it.Next()
	if !ok {
		t.Fatal("expected a carried seed")
	}
	if second[7] != alphabet[0] || second[6] != '3' {
		t.Fatalf("second = %q, want carry into position 6", second)
	}
}

func TestSequentialIteratorRejectsBadAlphabet(t *testing.T) {
	if _, err := search.NewSequentialIterator("2222222!", search.DefaultAlphabet, 1); err == nil {
		t.Fatal("expected an error for a seed character outside the alphabet")
	}
}

func TestSequentialIteratorRejectsWrongLength(t *testing.T) {
	if _, err := search.NewSequentialIterator("2222222", search.DefaultAlphabet, 1); err == nil {
		t.Fatal("expected an error for a seed of the wrong length")
	}
}

func TestIndexRangeIteratorStartsAtZeroIndex(t *testing.T) {
	it, err := search.NewIndexRangeIterator(0, 2, search.DefaultAlphabet)
	if err != nil {
		t.Fatal(err)
	}
	first, ok := it.Next()
	if !ok {
		t.Fatal("expected a seed")
	}
	zero := search.DefaultAlphabet[0]
	for _, c := range first {
		if c != zero {
			t.Fatalf("index 0 should encode as all-zero-digit seed, got %q", first)
		}
	}
	second, ok := it.Next()
	if !ok {
		t.Fatal("expected a second seed")
	}
	if second[len(second)-1] != search.DefaultAlphabet[1] {
		t.Fatalf("index 1 should increment the last digit, got %q", second)
	}
	if _, ok := it.Next(); ok {
		t.Fatal("expected the iterator to stop at end")
	}
}

func TestIndexRangeIteratorRejectsBackwardsRange(t *testing.T) {
	if _, err := search.NewIndexRangeIterator(10, 5, search.DefaultAlphabet); err == nil {
		t.Fatal("expected an error for end < start")
	}
}

func TestIndexRangeIteratorUnboundedEndRunsUntilLimit(t *testing.T) {
	// A 2-character alphabet over SeedLength digits has a small, checkable
	// total space; starting near the top confirms Next() stops exactly at
	// the alphabet's own ceiling when end == 0.
	alphabet := "01"
	limit := uint64(1)
	for i := 0; i < search.SeedLength; i++ {
		limit *= uint64(len(alphabet))
	}
	it, err := search.NewIndexRangeIterator(limit-1, 0, alphabet)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := it.Next(); !ok {
		t.Fatal("expected one more seed at the last valid index")
	}
	if _, ok := it.Next(); ok {
		t.Fatal("expected the iterator to stop once the alphabet space is exhausted")
	}
}
