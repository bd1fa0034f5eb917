package fastbreak

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the request lifecycle,
// cache and batch execution. It is safe for concurrent use.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec

	retriesTotal   *prometheus.CounterVec
	throttledTotal *prometheus.CounterVec

	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	cacheSize   prometheus.Gauge

	batchesTotal   *prometheus.CounterVec
	batchTasks     *prometheus.CounterVec
	batchTaskGauge prometheus.Gauge

	errorsTotal *prometheus.CounterVec
}

// NewMetricsCollector creates a collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the supplied
// registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastbreak_requests_total",
				Help: "Total number of API requests resolved",
			},
			[]string{"endpoint", "status_code"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fastbreak_request_duration_seconds",
				Help:    "Duration of API requests in seconds, retries included",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		requestsInFlight: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fastbreak_requests_in_flight",
				Help: "Number of API requests currently in flight",
			},
			[]string{"endpoint"},
		),
		retriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastbreak_retries_total",
				Help: "Total number of retry attempts",
			},
			[]string{"endpoint", "attempt"},
		),
		throttledTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastbreak_throttled_total",
				Help: "Total number of server throttling responses",
			},
			[]string{"endpoint"},
		),
		cacheHits: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastbreak_cache_hits_total",
				Help: "Total number of result cache hits",
			},
			[]string{"endpoint"},
		),
		cacheMisses: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastbreak_cache_misses_total",
				Help: "Total number of result cache misses",
			},
			[]string{"endpoint"},
		),
		cacheSize: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "fastbreak_cache_size",
				Help: "Current number of entries in the result cache",
			},
		),
		batchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastbreak_batches_total",
				Help: "Total number of batches by outcome",
			},
			[]string{"outcome"},
		),
		batchTasks: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastbreak_batch_tasks_total",
				Help: "Total number of batch tasks by outcome",
			},
			[]string{"outcome"},
		),
		batchTaskGauge: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "fastbreak_batch_tasks_pending",
				Help: "Number of tasks in currently executing batches",
			},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastbreak_errors_total",
				Help: "Total number of terminal errors by type",
			},
			[]string{"type", "endpoint"},
		),
	}
}

// RecordRequestStart increments the in-flight gauge.
func (mc *MetricsCollector) RecordRequestStart(endpoint string) {
	mc.requestsInFlight.WithLabelValues(endpoint).Inc()
}

// RecordRequestEnd decrements the in-flight gauge.
func (mc *MetricsCollector) RecordRequestEnd(endpoint string) {
	mc.requestsInFlight.WithLabelValues(endpoint).Dec()
}

// RecordRequest records a resolved request with its final status and total
// duration.
func (mc *MetricsCollector) RecordRequest(endpoint string, statusCode int, duration time.Duration) {
	mc.requestsTotal.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
	mc.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordRetry records one retry attempt.
func (mc *MetricsCollector) RecordRetry(endpoint string, attempt int) {
	mc.retriesTotal.WithLabelValues(endpoint, strconv.Itoa(attempt)).Inc()
}

// RecordThrottle records a server throttling response.
func (mc *MetricsCollector) RecordThrottle(endpoint string) {
	mc.throttledTotal.WithLabelValues(endpoint).Inc()
}

// RecordCacheHit records a result cache hit.
func (mc *MetricsCollector) RecordCacheHit(endpoint string) {
	mc.cacheHits.WithLabelValues(endpoint).Inc()
}

// RecordCacheMiss records a result cache miss.
func (mc *MetricsCollector) RecordCacheMiss(endpoint string) {
	mc.cacheMisses.WithLabelValues(endpoint).Inc()
}

// RecordCacheSize sets the cache size gauge.
func (mc *MetricsCollector) RecordCacheSize(size int) {
	mc.cacheSize.Set(float64(size))
}

// RecordBatchStart adds a batch's tasks to the pending gauge.
func (mc *MetricsCollector) RecordBatchStart(tasks int) {
	mc.batchTaskGauge.Add(float64(tasks))
}

// RecordBatchTask records one task outcome ("success" or "failure").
func (mc *MetricsCollector) RecordBatchTask(outcome string) {
	mc.batchTasks.WithLabelValues(outcome).Inc()
}

// RecordBatchComplete records a batch outcome ("success", "failure" or
// "canceled") and drains its tasks from the pending gauge.
func (mc *MetricsCollector) RecordBatchComplete(outcome string, tasks int) {
	mc.batchesTotal.WithLabelValues(outcome).Inc()
	mc.batchTaskGauge.Sub(float64(tasks))
}

// RecordError records a terminal error by taxonomy type.
func (mc *MetricsCollector) RecordError(errorType, endpoint string) {
	mc.errorsTotal.WithLabelValues(errorType, endpoint).Inc()
}
