package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal *prometheus.CounterVec
	weatherFetchTotal *prometheus.CounterVec
	registerOnce      sync.Once
)

// Register initializes Prometheus metrics on the default registry.
func Register() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by the weather API.",
		}, []string{"method", "path", "status"})

		weatherFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather",
			Name:      "provider_fetch_total",
			Help:      "Outbound weather provider calls by outcome.",
		}, []string{"outcome"})
	})
}

// IncRequest increments the http_requests_total counter with the given labels.
func IncRequest(method, path string, status int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// IncFetch records one provider round-trip; outcome is "ok" or "error".
func IncFetch(outcome string) {
	if weatherFetchTotal == nil {
		return
	}
	weatherFetchTotal.WithLabelValues(outcome).Inc()
}
