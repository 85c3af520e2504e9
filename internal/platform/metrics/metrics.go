package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "backoffice",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "backoffice",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path"},
	)

	formatFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "backoffice",
			Subsystem: "currency",
			Name:      "format_fallbacks_total",
			Help:      "Number of amounts rendered with the fixed two-decimal fallback.",
		},
		[]string{"currency"},
	)

	preferenceReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "backoffice",
			Subsystem: "preferences",
			Name:      "reloads_total",
			Help:      "Scheduled preference reloads by outcome.",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		formatFallbacks,
		preferenceReloads,
	)
}

// Handler exposes the registry over HTTP.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one handled request.
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// RecordFormatFallback counts a formatter fallback. Unknown codes share one label
// so arbitrary input cannot grow the series count.
func RecordFormatFallback(code domain.CurrencyCode, _ error) {
	label := "unsupported"
	if _, ok := domain.LookupCurrency(code); ok {
		label = string(code)
	}
	formatFallbacks.WithLabelValues(label).Inc()
}

// RecordPreferencesReload counts a scheduled reload outcome.
func RecordPreferencesReload(result string) {
	preferenceReloads.WithLabelValues(result).Inc()
}
