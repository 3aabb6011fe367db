package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aadhira", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status", "source"}, // source: reply stage for chat turns, else none
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aadhira", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aadhira", Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"service", "endpoint", "outcome"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aadhira", Name: "external_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	Resolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aadhira", Name: "resolutions_total", Help: "Replies by resolution stage."},
		[]string{"source"}, // intent|remote|offline|fault
	)
	ServiceRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aadhira", Name: "service_requests_total", Help: "Submitted service requests."},
		[]string{"kind", "priority"},
	)
	SessionEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aadhira", Name: "session_store_events_total", Help: "Session store hits/misses/sets."},
		[]string{"store", "event"}, // event: hit|miss|set|error
	)
)

// Serve exposes h on addr/metrics in the background. Empty addr disables it.
func Serve(addr string, h http.Handler) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency,
		Resolutions, ServiceRequests, SessionEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method, source string, status int, dur time.Duration) {
	if source == "" {
		source = "none"
	}
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status), source).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveExternal(service, endpoint string, err error, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, endpoint, LabelErr(err)).Inc()
	ExternalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

func ObserveResolution(source string) { Resolutions.WithLabelValues(source).Inc() }

func ObserveRequest(kind, priority string) { ServiceRequests.WithLabelValues(kind, priority).Inc() }

func ObserveSession(store, event string) { SessionEvents.WithLabelValues(store, event).Inc() }

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
