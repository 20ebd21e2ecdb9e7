package score

import "sync/atomic"

// Cutoff is the adaptive-cutoff cell shared across every search worker
// (§4.5, §5, §9 "adaptive cutoff via atomic exchange"): a single machine
// word raised by a CAS loop and never lowered. Readers take a plain
// atomic load, so no worker ever blocks on another's score.
type Cutoff struct {
	value    atomic.Int64
	adaptive bool
}

// NewCutoff starts the learned cutoff at base, the caller-provided fixed
// floor (spec §4.5: "the current cutoff starts at the caller-provided base
// value"), and leaves it raisable. Callers who need the non-adaptive
// (fixed, never-raised) behavior should go through NewCutoffFromConfig
// with Adaptive: false instead.
func NewCutoff(base int) *Cutoff {
	c := &Cutoff{adaptive: true}
	c.value.Store(int64(base))
	return c
}

// Load returns the current cutoff.
func (c *Cutoff) Load() int {
	return int(c.value.Load())
}

// Raise raises the cutoff to score if score strictly exceeds the current
// value, atomically and safely under concurrent callers (CAS-retry loop,
// monotonically non-decreasing — spec §8's "adaptive cutoff monotonicity").
// A score not exceeding the current cutoff is a no-op, and so is any call
// when the cutoff was built non-adaptive (spec §4.5: "if disabled, the
// fixed base cutoff is used") — the cell stays pinned at its starting value.
func (c *Cutoff) Raise(score int) {
	if !c.adaptive {
		return
	}
	target := int64(score)
	for {
		current := c.value.Load()
		if target <= current {
			return
		}
		if c.value.CompareAndSwap(current, target) {
			return
		}
	}
}

// CutoffConfig is the caller-supplied cutoff configuration (spec §6's
// cutoff_config collaborator): a fixed base, and whether it may be raised
// as better seeds are found.
type CutoffConfig struct {
	Base     int
	Adaptive bool
}

// NewCutoffFromConfig builds the Cutoff this search should use, honoring
// Adaptive: when false, the returned Cutoff's Raise is a no-op and the
// cell stays pinned at Base for the whole search (spec §4.5: "if disabled,
// the fixed base cutoff is used").
func NewCutoffFromConfig(cfg CutoffConfig) *Cutoff {
	c := &Cutoff{adaptive: cfg.Adaptive}
	c.value.Store(int64(cfg.Base))
	return c
}

// FoundCounter is the results-found atomic counter shared across workers
// (spec §5's second piece of cross-thread state).
type FoundCounter struct {
	n atomic.Int64
}

// Increment records one more emitted result.
func (f *FoundCounter) Increment() { f.n.Add(1) }

// Load returns the current count.
func (f *FoundCounter) Load() int64 { return f.n.Load() }
