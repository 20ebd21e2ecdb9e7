package clause

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig bundles a filter document together with the run-level knobs
// one invocation of cmd/seedscout needs — where the filter document lives,
// the seed range to scan, cutoff behavior, and worker count. It is YAML,
// not JSON: the filter document itself is JSON (§6.1); RunConfig is the
// additive operational layer around it, in the same spirit as the
// dungeon.Config pattern of bundling generation knobs for one CLI run.
type RunConfig struct {
	// FilterPath is the path to the JSON filter-spec document.
	FilterPath string `yaml:"filterPath" json:"filterPath"`

	// SeedRange bounds the scan (inclusive start, exclusive end, over an
	// external seed-indexing scheme the dispatcher owns).
	SeedRange SeedRangeCfg `yaml:"seedRange" json:"seedRange"`

	// Workers is the number of concurrent scan workers.
	Workers int `yaml:"workers" json:"workers"`

	// Cutoff is the scoring cutoff configuration.
	Cutoff CutoffCfg `yaml:"cutoff" json:"cutoff"`

	// SinkKind selects the result sink: "jsonl" or "postgres".
	SinkKind string `yaml:"sinkKind" json:"sinkKind"`

	// SinkPath is the JSONL output path, used when SinkKind is "jsonl".
	SinkPath string `yaml:"sinkPath,omitempty" json:"sinkPath,omitempty"`

	// PostgresDSN connects the Postgres sink, used when SinkKind is "postgres".
	PostgresDSN string `yaml:"postgresDSN,omitempty" json:"postgresDSN,omitempty"`

	// StatusAddr, if set, starts the read-only status endpoint on this address.
	StatusAddr string `yaml:"statusAddr,omitempty" json:"statusAddr,omitempty"`
}

// SeedRangeCfg bounds a scan over the external seed-indexing scheme.
type SeedRangeCfg struct {
	Start uint64 `yaml:"start" json:"start"`
	End   uint64 `yaml:"end" json:"end"`
}

// CutoffCfg configures the scoring provider's cutoff behavior (spec §4.5).
type CutoffCfg struct {
	Base     int  `yaml:"base" json:"base"`
	Adaptive bool `yaml:"adaptive" json:"adaptive"`
}

// LoadRunConfig reads and validates a YAML run configuration file.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("clause: reading run config: %w", err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("clause: parsing run config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("clause: invalid run config: %w", err)
	}
	return &cfg, nil
}

// Validate checks RunConfig constraints.
func (c *RunConfig) Validate() error {
	if c.FilterPath == "" {
		return fmt.Errorf("filterPath must not be empty")
	}
	if c.SeedRange.End != 0 && c.SeedRange.End < c.SeedRange.Start {
		return fmt.Errorf("seedRange.end (%d) must be >= seedRange.start (%d)", c.SeedRange.End, c.SeedRange.Start)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.SinkKind {
	case "", "jsonl":
		if c.SinkKind == "jsonl" && c.SinkPath == "" {
			return fmt.Errorf("sinkPath must be set when sinkKind is jsonl")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgresDSN must be set when sinkKind is postgres")
		}
	default:
		return fmt.Errorf("unknown sinkKind %q", c.SinkKind)
	}
	return nil
}

// Hash computes a deterministic fingerprint of the run configuration,
// usable as a correlation key or cache key across repeated invocations.
func (c *RunConfig) Hash() []byte {
	data, err := json.Marshal(c)
	if err != nil {
		h := sha256.Sum256([]byte(c.FilterPath))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}
