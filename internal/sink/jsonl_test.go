package sink_test

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dshills/seedscout/internal/sink"
)

func TestJSONLSinkWritesOneLinePerResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	s, err := sink.NewJSONLSink(path, false)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.OnResult("AAAAAAAA", 10, []int{10}); err != nil {
		t.Fatal(err)
	}
	if err := s.OnResult("BBBBBBBB", 20, []int{5, 15}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}

	var first struct {
		Seed       string `json:"seed"`
		TotalScore int    `json:"totalScore"`
		Tallies    []int  `json:"tallies"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if first.Seed != "AAAAAAAA" || first.TotalScore != 10 || len(first.Tallies) != 1 {
		t.Fatalf("unexpected first record: %+v", first)
	}
}

func TestJSONLSinkConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	s, err := sink.NewJSONLSink(path, false)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.OnResult("SEEDSEED", i, []int{i}); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, b := range data {
		if b == '\n' {
			count++
		}
	}
	if count != n {
		t.Fatalf("expected %d lines, got %d", n, count)
	}
}
