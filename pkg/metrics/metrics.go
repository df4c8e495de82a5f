package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitportal_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitportal_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// PhotoUploadsTotal counts accepted photo uploads.
	PhotoUploadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitportal_photo_uploads_total",
			Help: "Total number of accepted photo uploads",
		},
	)

	// WebhookDeliveriesTotal counts webhook delivery outcomes.
	WebhookDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitportal_webhook_deliveries_total",
			Help: "Total number of webhook delivery attempts by outcome",
		},
		[]string{"outcome"},
	)

	// SizeRecommendationsTotal counts computed size recommendations.
	SizeRecommendationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitportal_size_recommendations_total",
			Help: "Total number of computed size recommendations",
		},
	)
)

// Handler returns the endpoint that exposes collected metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and latency per method and route.
// The route label is the registered pattern, not the raw URL, so the label
// cardinality stays bounded.
func Middleware(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(rw, r)

		httpRequestsTotal.WithLabelValues(
			r.Method,
			route,
			strconv.Itoa(rw.statusCode),
		).Inc()

		httpRequestDuration.WithLabelValues(
			r.Method,
			route,
		).Observe(time.Since(start).Seconds())
	}
}
