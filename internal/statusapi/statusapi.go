package statusapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dshills/seedscout/pkg/score"
	"github.com/dshills/seedscout/pkg/search"
)

// Progress is the JSON snapshot shape, grounded on the pack's
// ScanProgress: a small, flat struct of plain fields rather than the
// atomics themselves, so every read is a consistent point-in-time copy.
type Progress struct {
	Examined       int64   `json:"examined"`
	Found          int64   `json:"found"`
	Cutoff         int     `json:"cutoff"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
	SeedsPerSecond float64 `json:"seedsPerSecond"`
}

// Reporter is a running search's progress source; *Tracker implements it.
type Reporter interface {
	Progress() Progress
}

// Tracker wraps the atomics one search.Run worker already exposes
// (search.Stats, score.Cutoff) plus a start time, producing the flat
// Progress snapshot the status endpoint serves.
type Tracker struct {
	stats   *search.Stats
	cutoff  *score.Cutoff
	started time.Time
}

// NewTracker builds a Tracker reporting on stats and cutoff, both shared
// with the in-flight search.Run call(s) this tracker observes.
func NewTracker(stats *search.Stats, cutoff *score.Cutoff) *Tracker {
	return &Tracker{stats: stats, cutoff: cutoff, started: time.Now()}
}

// Progress returns the current snapshot.
func (t *Tracker) Progress() Progress {
	examined := t.stats.Examined.Load()
	elapsed := time.Since(t.started).Seconds()
	var rate float64
	if elapsed > 0 {
		rate = float64(examined) / elapsed
	}
	return Progress{
		Examined:       examined,
		Found:          t.stats.Found.Load(),
		Cutoff:         t.cutoff.Load(),
		ElapsedSeconds: elapsed,
		SeedsPerSecond: rate,
	}
}

// NewRouter builds the gin engine serving GET /status from reporter. It
// mirrors the pack's SetupRouter shape but strips everything not needed
// for a single read-only endpoint — no CORS, no auth, no static assets.
func NewRouter(reporter Reporter) *gin.Engine {
	r := gin.Default()
	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, reporter.Progress())
	})
	return r
}
