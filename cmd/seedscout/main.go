package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/seedscout/internal/sink"
	"github.com/dshills/seedscout/internal/statusapi"
	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/itemdata"
	"github.com/dshills/seedscout/pkg/score"
	"github.com/dshills/seedscout/pkg/search"
)

const version = "1.0.0"

// CLI flags
var (
	configPath = flag.String("config", "", "Path to YAML run configuration file (required)")
	seedStart  = flag.Uint64("seed-start", 0, "Override the run config's seed range start")
	seedEnd    = flag.Uint64("seed-end", 0, "Override the run config's seed range end (0 = use config)")
	workersF   = flag.Int("workers", 0, "Override the run config's worker count (0 = use config)")
	cutoffBase = flag.Int("cutoff-base", 0, "Override the run config's cutoff base score")
	adaptiveF  = flag.Bool("adaptive", false, "Enable adaptive cutoff regardless of run config")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("seedscout version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printUsage()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// run loads the run configuration, wires the sink/status-server/worker
// pool, and blocks until every worker's seed range is exhausted or the
// process is interrupted. One *score.Cutoff and one *search.Stats are
// built once and shared across every worker goroutine (spec §5's
// cross-thread cutoff/found state), since RunConfig.Workers makes this
// binary itself the multi-worker dispatcher spec §5 describes as out of
// scope for the search entry point's own literal signature.
func run(logger *slog.Logger) error {
	runID := uuid.New().String()
	logger = logger.With("runID", runID)

	cfg, err := clause.LoadRunConfig(*configPath)
	if err != nil {
		return fmt.Errorf("loading run config: %w", err)
	}
	if *seedStart != 0 {
		cfg.SeedRange.Start = *seedStart
	}
	if *seedEnd != 0 {
		cfg.SeedRange.End = *seedEnd
	}
	if *workersF != 0 {
		cfg.Workers = *workersF
	}
	if *cutoffBase != 0 {
		cfg.Cutoff.Base = *cutoffBase
	}
	if *adaptiveF {
		cfg.Cutoff.Adaptive = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid run config after overrides: %w", err)
	}

	filterData, err := os.ReadFile(cfg.FilterPath)
	if err != nil {
		return fmt.Errorf("reading filter spec: %w", err)
	}
	raw, err := clause.ParseConfig(filterData)
	if err != nil {
		return fmt.Errorf("parsing filter spec: %w", err)
	}
	f, err := clause.Prepare(raw)
	if err != nil {
		return fmt.Errorf("preparing filter: %w", err)
	}

	resultSink, closeSink, err := buildSink(cfg)
	if err != nil {
		return fmt.Errorf("building sink: %w", err)
	}
	defer closeSink()

	cutoff := score.NewCutoffFromConfig(score.CutoffConfig{Base: cfg.Cutoff.Base, Adaptive: cfg.Cutoff.Adaptive})
	stats := &search.Stats{Found: &score.FoundCounter{}}

	var statusServer *http.Server
	if cfg.StatusAddr != "" {
		tracker := statusapi.NewTracker(stats, cutoff)
		statusServer = &http.Server{Addr: cfg.StatusAddr, Handler: statusapi.NewRouter(tracker)}
		go func() {
			logger.Info("status endpoint listening", "addr", cfg.StatusAddr)
			if err := statusServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("status server stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = statusServer.Shutdown(shutdownCtx)
		}()
	}

	ranges, err := splitSeedRange(cfg.SeedRange, cfg.Workers)
	if err != nil {
		return fmt.Errorf("splitting seed range across workers: %w", err)
	}

	logger.Info("starting search",
		"filter", cfg.FilterPath,
		"workers", cfg.Workers,
		"seedRangeStart", cfg.SeedRange.Start,
		"seedRangeEnd", cfg.SeedRange.End,
		"cutoffBase", cfg.Cutoff.Base,
		"adaptive", cfg.Cutoff.Adaptive,
	)

	table := itemdata.Default()
	var cancel atomic.Bool
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var wg sync.WaitGroup
	errs := make(chan error, len(ranges))
	start := time.Now()
	for i, r := range ranges {
		iter, err := search.NewIndexRangeIterator(r.Start, r.End, search.DefaultAlphabet)
		if err != nil {
			return fmt.Errorf("building worker %d's seed iterator: %w", i, err)
		}
		wg.Add(1)
		go func(workerID int, iter *search.IndexRangeIterator) {
			defer wg.Done()
			if err := search.RunShared(ctx, f, iter, cutoff, stats, &cancel, resultSink, table, false); err != nil {
				errs <- fmt.Errorf("worker %d: %w", workerID, err)
			}
		}(i, iter)
	}
	wg.Wait()
	close(errs)

	elapsed := time.Since(start)
	for err := range errs {
		logger.Error("worker error", "error", err)
		return err
	}

	logger.Info("search complete",
		"elapsed", elapsed.String(),
		"examined", stats.Examined.Load(),
		"found", stats.Found.Load(),
		"finalCutoff", cutoff.Load(),
	)
	return nil
}

// buildSink constructs the result sink RunConfig.SinkKind names, plus a
// close function the caller must defer. An empty SinkKind writes results
// to stdout, one result per line, so the binary is usable without any
// persistence backend configured.
func buildSink(cfg *clause.RunConfig) (score.ResultSink, func(), error) {
	switch cfg.SinkKind {
	case "postgres":
		ps, err := sink.ConnectPostgresSink(context.Background(), cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting postgres sink: %w", err)
		}
		if err := ps.InitSchema(context.Background()); err != nil {
			ps.Close()
			return nil, nil, fmt.Errorf("initializing postgres schema: %w", err)
		}
		return ps, ps.Close, nil
	case "jsonl":
		js, err := sink.NewJSONLSink(cfg.SinkPath, true)
		if err != nil {
			return nil, nil, fmt.Errorf("opening jsonl sink: %w", err)
		}
		return js, func() { _ = js.Close() }, nil
	default:
		stdout := score.ResultSinkFunc(func(seed string, totalScore int, tallies []int) error {
			fmt.Printf("%s\t%d\t%v\n", seed, totalScore, tallies)
			return nil
		})
		return stdout, func() {}, nil
	}
}

// splitSeedRange divides [cfg.Start, cfg.End) into workers contiguous,
// roughly equal sub-ranges. An unbounded end (0) can only be split across
// a single worker, since the workers' individual ranges must be disjoint
// and finite to hand out.
func splitSeedRange(cfg clause.SeedRangeCfg, workers int) ([]clause.SeedRangeCfg, error) {
	if workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", workers)
	}
	if cfg.End == 0 {
		if workers != 1 {
			return nil, fmt.Errorf("an unbounded seed range (end=0) requires workers=1, got %d", workers)
		}
		return []clause.SeedRangeCfg{cfg}, nil
	}

	total := cfg.End - cfg.Start
	chunk := total / uint64(workers)
	remainder := total % uint64(workers)

	ranges := make([]clause.SeedRangeCfg, 0, workers)
	cursor := cfg.Start
	for i := 0; i < workers; i++ {
		size := chunk
		if uint64(i) < remainder {
			size++
		}
		if size == 0 {
			continue
		}
		ranges = append(ranges, clause.SeedRangeCfg{Start: cursor, End: cursor + size})
		cursor += size
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("seed range [%d, %d) is too small to split across %d workers", cfg.Start, cfg.End, workers)
	}
	return ranges, nil
}

func printUsage() {
	fmt.Println("seedscout searches procedurally generated seeds for ones matching a declarative filter.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  seedscout -config run.yaml")
	fmt.Println()
	flag.PrintDefaults()
}
