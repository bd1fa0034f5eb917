package fastbreak

import (
	"context"
	"math/rand"
	"net/http"
	"reflect"
	"runtime"
	"sync"
	"time"

	"github.com/reidhoch/fastbreak/internal/backoff"
)

// Client is a typed NBA Stats API client that layers result caching,
// retries with backoff, bounded-concurrency batches and metrics around a
// pooled HTTP transport. It is safe for concurrent use.
//
// The zero value is not usable; construct with New and release the
// connection pool with Close.
type Client struct {
	transport *transport

	maxRetries int
	backoffCfg backoff.Config

	cache *resultCache

	maxConcurrency int
	requestDelay   time.Duration

	logger  Logger
	metrics *MetricsCollector

	rngMu sync.Mutex
	rng   *rand.Rand

	// rootCtx is the engine's cancellation source: closed on Close or on a
	// termination signal, tearing down in-flight batch work.
	rootCtx    context.Context
	rootCancel context.CancelFunc

	closeOnce sync.Once
	stopSigs  func()

	handleSignals bool
	timeout       time.Duration
	userAgent     string
	httpClient    *http.Client
	baseURL       string
	seed          int64
	seedSet       bool

	validationError error
}

// New constructs a Client using the provided functional options. A best
// effort validation is performed; call IsValid / ValidationError for errors
// (every request also surfaces the validation failure).
func New(options ...Option) *Client {
	c := &Client{
		maxRetries: 3,
		backoffCfg: backoff.Config{
			Min:        1 * time.Second,
			Max:        10 * time.Second,
			Multiplier: 2.0,
			Jitter:     0.1,
		},
		maxConcurrency: 3,
		requestDelay:   0,
		timeout:        30 * time.Second,
		userAgent:      defaultUserAgent,
		handleSignals:  true,
	}

	for _, option := range options {
		option(c)
	}

	if err := c.validateConfiguration(); err != nil {
		c.validationError = err
	}

	seed := c.seed
	if !c.seedSet {
		seed = time.Now().UnixNano()
	}
	c.rng = rand.New(rand.NewSource(seed))

	c.transport = newTransport(c.httpClient, c.timeout, c.userAgent)
	if c.baseURL != "" {
		c.transport.baseURL = c.baseURL
	}

	c.rootCtx, c.rootCancel = context.WithCancel(context.Background())

	if c.handleSignals {
		c.stopSigs = c.hookSignals()
	}

	if c.transport.owns {
		// Development aid: a collected client that still owns its pool was
		// never closed. Warn, don't fail.
		runtime.SetFinalizer(c, func(leaked *Client) {
			if leaked.logger != nil {
				leaked.logger.Warn("client garbage collected without Close; connection pool leaked")
			}
		})
	}

	return c
}

// Close releases the engine's resources: the connection pool (when engine
// owned), the signal hook and all in-flight batch work. Safe to call
// multiple times; the pool is closed exactly once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		if c.stopSigs != nil {
			c.stopSigs()
		}
		c.rootCancel()
		c.transport.close()
		runtime.SetFinalizer(c, nil)
		if c.logger != nil {
			c.logger.Debug("client closed")
		}
	})
}

// IsValid reports whether configuration validation passed at construction.
func (c *Client) IsValid() bool {
	return c.validationError == nil
}

// ValidationError returns the configuration validation error, if any.
func (c *Client) ValidationError() error {
	return c.validationError
}

// ClearCache drops every cached result.
func (c *Client) ClearCache() {
	if c.cache != nil {
		c.cache.clear()
	}
}

// CacheStats reports the cache's live state; ok is false when caching is
// disabled.
func (c *Client) CacheStats() (stats CacheStats, ok bool) {
	if c.cache == nil {
		return CacheStats{}, false
	}
	return c.cache.stats(), true
}

// Get executes one logical request: cache lookup, transport call with
// retries, decode and cache store. Transient failures (throttling, 5xx,
// connection faults, timeouts) are retried up to the configured budget with
// backoff; all other failures surface immediately.
//
// A cache hit returns without touching the network and never counts toward
// retry attempts.
func Get[T any](ctx context.Context, c *Client, ep Endpoint[T]) (T, error) {
	var zero T

	if err := c.validationError; err != nil {
		return zero, err
	}
	if ep == nil {
		return zero, &ClientError{Type: ErrorTypeValidation, Message: "nil endpoint"}
	}

	path := ep.Path()
	key := requestKey(path, ep.Params())

	if c.cache != nil {
		if v, ok := c.cache.get(key); ok {
			if c.logger != nil {
				c.logger.Debug("cache hit", "endpoint", path, "key", key)
			}
			if c.metrics != nil {
				c.metrics.RecordCacheHit(path)
			}
			return v.(T), nil
		}
		if c.metrics != nil {
			c.metrics.RecordCacheMiss(path)
		}
	}

	value, err := fetch(ctx, c, ep, path)
	if err != nil {
		return zero, err
	}

	if c.cache != nil {
		if err := c.cache.put(key, value, reflect.TypeOf((*T)(nil)).Elem()); err != nil {
			// Identity collision is an invariant violation, never swallowed.
			if c.logger != nil {
				c.logger.Error("cache identity collision", "endpoint", path, "key", key, "error", err)
			}
			return zero, err
		}
		if c.metrics != nil {
			c.metrics.RecordCacheSize(c.cache.stats().Size)
		}
	}

	return value, nil
}

// fetch runs the attempt loop for one logical request.
func fetch[T any](ctx context.Context, c *Client, ep Endpoint[T], path string) (T, error) {
	var zero T

	start := time.Now()
	if c.metrics != nil {
		c.metrics.RecordRequestStart(path)
		defer c.metrics.RecordRequestEnd(path)
	}

	params := ep.Params()
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries+1; attempt++ {
		if c.logger != nil {
			c.logger.Debug("attempt start", "endpoint", path, "attempt", attempt, "maxAttempts", c.maxRetries+1)
		}
		if attempt > 1 && c.metrics != nil {
			c.metrics.RecordRetry(path, attempt-1)
		}

		wire, err := c.transport.roundTrip(ctx, path, params)

		if err == nil {
			value, decodeErr := ep.Decode(wire.body)
			if decodeErr != nil {
				// Schema mismatch: retrying cannot fix it. Surfaced as its
				// own kind so callers can tell remote drift from network
				// trouble.
				if c.metrics != nil {
					c.metrics.RecordError(ErrorTypeDecode, path)
				}
				return zero, &ClientError{
					Type:       ErrorTypeDecode,
					Message:    "response did not match expected shape",
					Cause:      decodeErr,
					Endpoint:   path,
					StatusCode: wire.statusCode,
					Attempt:    attempt,
					MaxRetries: c.maxRetries,
					Timestamp:  time.Now(),
				}
			}
			if c.logger != nil {
				c.logger.Debug("request succeeded", "endpoint", path, "attempt", attempt, "duration", time.Since(start))
			}
			if c.metrics != nil {
				c.metrics.RecordRequest(path, wire.statusCode, time.Since(start))
			}
			return value, nil
		}

		lastErr = annotateAttempt(err, attempt, c.maxRetries)

		if !IsTransient(err) {
			if c.metrics != nil {
				c.metrics.RecordError(errorType(err), path)
				c.metrics.RecordRequest(path, statusCode(wire), time.Since(start))
			}
			return zero, lastErr
		}

		var hint time.Duration
		if wire != nil {
			hint = wire.retryAfter
		}
		throttled := hint > 0 || errorType(err) == ErrorTypeThrottled
		if throttled {
			if c.logger != nil {
				c.logger.Warn("throttled by server", "endpoint", path, "attempt", attempt, "retryAfter", hint)
			}
			if c.metrics != nil {
				c.metrics.RecordThrottle(path)
			}
		}

		if attempt > c.maxRetries {
			break
		}

		delay := c.nextBackoff(attempt, hint)
		if c.logger != nil {
			c.logger.Info("scheduling retry", "endpoint", path, "attempt", attempt+1, "backoff", delay)
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return zero, &ClientError{
				Type:     ErrorTypeCanceled,
				Message:  "canceled while waiting to retry",
				Cause:    ctx.Err(),
				Endpoint: path,
				Attempt:  attempt,
			}
		}
	}

	if c.metrics != nil {
		c.metrics.RecordError(errorType(lastErr), path)
	}
	if c.logger != nil {
		c.logger.Error("retries exhausted", "endpoint", path, "attempts", c.maxRetries+1, "error", lastErr)
	}
	return zero, lastErr
}

// nextBackoff computes the wait before the next attempt. The shared rand
// source is lock-guarded; math/rand.Rand is not safe for concurrent use.
func (c *Client) nextBackoff(attempt int, hint time.Duration) time.Duration {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return backoff.Wait(attempt, hint, c.backoffCfg, c.rng)
}

func annotateAttempt(err error, attempt, maxRetries int) error {
	if ce, ok := err.(*ClientError); ok {
		ce.Attempt = attempt
		ce.MaxRetries = maxRetries
		ce.Timestamp = time.Now()
	}
	return err
}

func errorType(err error) string {
	if ce, ok := err.(*ClientError); ok {
		return ce.Type
	}
	return "Unknown"
}

func statusCode(wire *wireResponse) int {
	if wire == nil {
		return 0
	}
	return wire.statusCode
}
