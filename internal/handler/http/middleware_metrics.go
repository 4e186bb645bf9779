package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	passesCreated prometheus.Counter
	uploadedBytes prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pass_sync",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pass_sync",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		passesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pass_sync",
			Name:      "passes_created_total",
			Help:      "Passes minted by the server.",
		}),
		uploadedBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pass_sync",
			Name:      "upload_size_bytes",
			Help:      "Size of accepted payloads.",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.passesCreated,
		m.uploadedBytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// withMetrics labels by route pattern so pass tokens never become label values.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		route := routePattern(r)
		h.metrics.requests.WithLabelValues(route, r.Method, strconv.Itoa(mw.Status())).Inc()
		h.metrics.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
