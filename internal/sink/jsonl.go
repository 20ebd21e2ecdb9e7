package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// record is one result's on-disk shape: one JSON object per line, the
// same fields score.ResultSink.OnResult carries.
type record struct {
	Seed       string `json:"seed"`
	TotalScore int    `json:"totalScore"`
	Tallies    []int  `json:"tallies"`
}

// JSONLSink appends one JSON object per matched seed to an open file,
// flushing after every write so a killed process loses at most the
// write in flight. Grounded on dungo's SaveJSONToFile (encode with
// encoding/json, 0644 permissions) but append-only rather than
// rewrite-whole-file, since results accumulate across a long-running
// search rather than describing one finished artifact.
type JSONLSink struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewJSONLSink opens (creating if needed, truncating if append is false)
// path for writing and returns a sink ready for concurrent OnResult calls.
func NewJSONLSink(path string, appendExisting bool) (*JSONLSink, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if appendExisting {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("sink: open %s: %w", path, err)
	}
	return &JSONLSink{file: f, enc: json.NewEncoder(f)}, nil
}

// OnResult appends one line for result and fsyncs it.
func (s *JSONLSink) OnResult(seed string, totalScore int, tallies []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enc.Encode(record{Seed: seed, TotalScore: totalScore, Tallies: tallies}); err != nil {
		return fmt.Errorf("sink: encode result for seed %s: %w", seed, err)
	}
	return s.file.Sync()
}

// Close flushes and closes the underlying file.
func (s *JSONLSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
