// Package metrics provides Prometheus metrics collection for the coffee builder.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuotesTotal counts price quotes by outcome.
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coffee_quotes_total",
			Help: "Total number of price quotes",
		},
		[]string{"status"},
	)

	// QuoteDuration tracks how long building a quote takes.
	QuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coffee_quote_duration_seconds",
			Help:    "Price quote duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// QuoteTotalPrice tracks the distribution of quoted totals in minor units.
	QuoteTotalPrice = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coffee_quote_total_price",
			Help:    "Quoted beverage totals in minor currency units",
			Buckets: []float64{120, 160, 200, 250, 300, 400, 500, 750},
		},
	)

	// SessionOperationsTotal counts configurator session operations.
	SessionOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coffee_session_operations_total",
			Help: "Total number of configurator session operations",
		},
		[]string{"operation", "result"},
	)

	// SessionsActive tracks configurator sessions held in memory.
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "coffee_sessions_active",
			Help: "Number of configurator sessions currently held in memory",
		},
	)

	// CatalogVersion exposes the version of the catalog currently served.
	CatalogVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "coffee_catalog_version",
			Help: "Version of the active catalog (0 means reference catalog)",
		},
	)

	// CircuitBreakerState exposes each breaker's state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records the outcome, latency and total of a quote.
func RecordQuote(duration time.Duration, total int, status string) {
	QuoteDuration.Observe(duration.Seconds())
	QuotesTotal.WithLabelValues(status).Inc()
	if status == "success" {
		QuoteTotalPrice.Observe(float64(total))
	}
}

// RecordSessionOperation records a session operation and its result.
func RecordSessionOperation(operation, result string) {
	SessionOperationsTotal.WithLabelValues(operation, result).Inc()
}

// SetActiveSessions records the number of live sessions.
func SetActiveSessions(n int) {
	SessionsActive.Set(float64(n))
}

// SetCatalogVersion records the catalog version being served.
func SetCatalogVersion(version int) {
	CatalogVersion.Set(float64(version))
}

// SetCircuitBreakerState records the state of the named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
