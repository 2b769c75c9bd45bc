package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelinfo", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotelinfo", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelinfo", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	PhotoUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelinfo", Name: "photo_uploads_total", Help: "Photo uploads by outcome."},
		[]string{"outcome"}, // outcome: ok|error
	)
	BookingsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "hotelinfo", Name: "bookings_completed_total", Help: "Bookings marked completed by the sweep job."},
	)
)

// InitRegistry builds a registry holding every collector of the service.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, CacheEvents, PhotoUploads, BookingsCompleted)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) {
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveUpload(err error) {
	if err != nil {
		PhotoUploads.WithLabelValues("error").Inc()
		return
	}
	PhotoUploads.WithLabelValues("ok").Inc()
}
