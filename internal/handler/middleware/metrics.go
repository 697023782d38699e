package middleware

import (
	"strconv"
	"time"

	"restaurant-reservations/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// httpRequests counts handled requests.
	// Labels: method, route (the registered path pattern), status
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reservations",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	// httpLatency measures request handling time.
	// Labels: method, route
	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reservations",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// seatingOutcomes counts seat and unseat attempts.
	// Labels: operation (seat, unseat), outcome (success, validation, not_found, conflict, storage)
	seatingOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reservations",
		Subsystem: "tables",
		Name:      "seating_outcomes_total",
		Help:      "Seat and unseat attempts by outcome",
	}, []string{"operation", "outcome"})
)

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// RecordSeating counts the outcome of a seat or unseat call.
func RecordSeating(operation string, err error) {
	seatingOutcomes.WithLabelValues(operation, outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	if err == nil {
		return "success"
	}
	switch errs.Classify(err) {
	case errs.ErrValidation:
		return "validation"
	case errs.ErrNotFound:
		return "not_found"
	case errs.ErrConflict:
		return "conflict"
	default:
		return "storage"
	}
}
