package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
	OutcomeDegraded = "degraded"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "routeterrain",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "routeterrain",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"method", "path"})

	// ElevationProviderAttempts counts provider calls by outcome:
	// success, error (transport/HTTP), rejected (implausible data)
	ElevationProviderAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "routeterrain",
		Subsystem: "elevation",
		Name:      "provider_attempts_total",
		Help:      "Elevation provider attempts by outcome",
	}, []string{"provider", "outcome"})

	GeocodeLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "routeterrain",
		Subsystem: "geocoding",
		Name:      "lookups_total",
		Help:      "Reverse geocoding lookups by outcome",
	}, []string{"outcome"})

	ReasoningRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "routeterrain",
		Subsystem: "reasoning",
		Name:      "requests_total",
		Help:      "Reasoning service calls by outcome",
	}, []string{"outcome"})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "routeterrain",
		Subsystem: "analysis",
		Name:      "duration_seconds",
		Help:      "End-to-end route analysis duration",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
	})
)

// Middleware records request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus /metrics endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
