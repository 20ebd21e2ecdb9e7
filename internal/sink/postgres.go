package sink

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSink persists matched seeds in a Postgres table, one row per
// result with its tallies as an integer array column. Grounded on the
// pack's Bitcoin engine's PostgresStore (pgxpool.New, Ping on connect,
// INSERT ... ON CONFLICT upsert shape) — adopted wholesale since this
// repository has no analogous concern elsewhere in this codebase.
type PostgresSink struct {
	pool *pgxpool.Pool
}

// ConnectPostgresSink opens a pool against connStr and verifies it with a
// Ping, the same two-step connect the pack's Bitcoin engine uses.
func ConnectPostgresSink(ctx context.Context, connStr string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("sink: connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("sink: ping postgres: %w", err)
	}
	return &PostgresSink{pool: pool}, nil
}

// InitSchema creates the results table if it does not already exist.
func (s *PostgresSink) InitSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS seed_results (
			seed TEXT PRIMARY KEY,
			total_score INTEGER NOT NULL,
			tallies INTEGER[] NOT NULL DEFAULT '{}',
			found_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`
	_, err := s.pool.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("sink: init schema: %w", err)
	}
	return nil
}

// OnResult upserts one matched seed. An existing row for the same seed is
// overwritten with this call's score and tallies, whatever score it held.
func (s *PostgresSink) OnResult(seed string, totalScore int, tallies []int) error {
	const insertSQL = `
		INSERT INTO seed_results (seed, total_score, tallies)
		VALUES ($1, $2, $3)
		ON CONFLICT (seed) DO UPDATE
		SET total_score = EXCLUDED.total_score, tallies = EXCLUDED.tallies;
	`
	_, err := s.pool.Exec(context.Background(), insertSQL, seed, totalScore, tallies)
	if err != nil {
		return fmt.Errorf("sink: insert result for seed %s: %w", seed, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresSink) Close() {
	s.pool.Close()
}
