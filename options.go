package fastbreak

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client at construction.
type Option func(*Client)

// WithMaxRetries sets the retry budget for transient failures. Zero means
// exactly one attempt per request.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithMinBackoff sets the base (and minimum) backoff wait.
func WithMinBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.backoffCfg.Min = d
	}
}

// WithMaxBackoff sets the upper clamp for backoff waits and server hints.
func WithMaxBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.backoffCfg.Max = d
	}
}

// WithBackoffMultiplier sets the per-attempt growth factor.
func WithBackoffMultiplier(f float64) Option {
	return func(c *Client) {
		c.backoffCfg.Multiplier = f
	}
}

// WithJitter sets the backoff randomization fraction (0.0 to 1.0).
func WithJitter(f float64) Option {
	return func(c *Client) {
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		c.backoffCfg.Jitter = f
	}
}

// WithRandSeed fixes the backoff jitter seed, making waits deterministic.
// Intended for tests.
func WithRandSeed(seed int64) Option {
	return func(c *Client) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithCacheTTL enables result caching with the given time-to-live. Zero
// (the default) disables caching entirely: lookups always miss, stores are
// no-ops and CacheStats reports not-ok.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl <= 0 {
			c.cache = nil
			return
		}
		maxSize := 256
		if c.cache != nil {
			maxSize = c.cache.maxSize
		}
		c.cache = newResultCache(ttl, maxSize)
	}
}

// WithCacheMaxSize bounds the number of cached results; the oldest
// insertion is evicted first once full. Only meaningful alongside
// WithCacheTTL.
func WithCacheMaxSize(n int) Option {
	return func(c *Client) {
		if c.cache != nil {
			c.cache.maxSize = n
		} else {
			// Remember the size for a later WithCacheTTL.
			c.cache = newResultCache(0, n)
			c.cache.ttl = 0
		}
	}
}

// WithMaxConcurrency bounds how many batch tasks run at once.
func WithMaxConcurrency(n int) Option {
	return func(c *Client) {
		c.maxConcurrency = n
	}
}

// WithRequestDelay spaces batch load: each task waits this long before its
// first transport attempt (once per task, not per retry). Zero disables.
func WithRequestDelay(d time.Duration) Option {
	return func(c *Client) {
		c.requestDelay = d
	}
}

// WithTimeout sets the per-exchange HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient supplies a caller-owned HTTP client. The engine will never
// close it; the caller remains responsible for its lifetime.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the remote origin. Primarily for tests against a
// stub server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithSignalHandling controls whether the client hooks SIGINT/SIGTERM to
// close the connection pool and cancel in-flight batches. Enabled by
// default; disable inside servers that manage their own shutdown.
func WithSignalHandling(enabled bool) Option {
	return func(c *Client) {
		c.handleSignals = enabled
	}
}

// WithLogger sets the structured event sink.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSimpleLogger enables event logging with a plain console logger.
func WithSimpleLogger() Option {
	return func(c *Client) {
		c.logger = NewSimpleLogger()
	}
}

// WithMetrics enables Prometheus metrics on the default registerer.
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector.
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// validateConfiguration checks the assembled configuration, collecting
// every violation into one Validation error.
func (c *Client) validateConfiguration() error {
	var problems []string

	if c.maxRetries < 0 {
		problems = append(problems, "maxRetries must be non-negative")
	}
	if c.backoffCfg.Min <= 0 {
		problems = append(problems, "minBackoff must be positive")
	}
	if c.backoffCfg.Max < c.backoffCfg.Min {
		problems = append(problems, "maxBackoff must be greater than or equal to minBackoff")
	}
	if c.backoffCfg.Multiplier <= 0 {
		problems = append(problems, "backoffMultiplier must be positive")
	}
	if c.backoffCfg.Jitter < 0 || c.backoffCfg.Jitter > 1 {
		problems = append(problems, "jitter must be between 0 and 1")
	}
	if c.timeout <= 0 {
		problems = append(problems, "timeout must be positive")
	}
	if c.maxConcurrency < 1 {
		problems = append(problems, "maxConcurrency must be at least 1")
	}
	if c.requestDelay < 0 {
		problems = append(problems, "requestDelay must be non-negative")
	}
	if c.cache != nil {
		if c.cache.ttl <= 0 {
			problems = append(problems, "cacheMaxSize was set but caching is disabled; add WithCacheTTL")
		}
		if c.cache.maxSize <= 0 {
			problems = append(problems, "cacheMaxSize must be positive")
		}
	}

	if len(problems) > 0 {
		return &ClientError{
			Type:    ErrorTypeValidation,
			Message: "configuration validation failed",
			Cause:   fmt.Errorf("validation errors: %v", problems),
		}
	}
	return nil
}
