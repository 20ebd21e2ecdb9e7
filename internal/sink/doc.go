// Package sink provides the two concrete score.ResultSink implementations
// this repository ships (spec §6): an append-only JSON-lines file sink,
// and a Postgres sink that upserts each result as it arrives. Both are safe for concurrent OnResult
// calls, since pkg/search invokes the sink without additional locking
// (spec §5).
package sink
