// Package fastbreak is a typed client for the NBA Stats API built around a
// resilient request execution engine:
//
//   - Retries with exponential backoff + jitter, honoring server Retry-After hints
//   - In-memory result caching with TTL expiry and insertion-order eviction
//   - Bounded-concurrency batch execution with all-or-nothing failure semantics
//   - Lazy connection pooling with idempotent, signal-driven shutdown
//   - Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area: functional options configure everything
//   - Decoded results are immutable once cached and safe to share between callers
//   - Safe concurrent use of a single *Client instance
//   - Extensibility via a pluggable Logger and metrics registry
//
// Typical usage:
//
//	client := fastbreak.New(
//	    fastbreak.WithMaxRetries(3),
//	    fastbreak.WithCacheTTL(5*time.Minute),
//	)
//	defer client.Close()
//
//	board, err := fastbreak.Get(ctx, client, &endpoints.ScoreboardV2{GameDate: "12/25/2024"})
//
// Request descriptors live in the endpoints package; the engine consumes from
// them only a stable identity (path + parameters) and a decoding contract.
// The library avoids opinionated logging: provide a Logger (e.g. via
// WithSimpleLogger or NewZapLogger) for insight without noise.
package fastbreak
