package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bookcatalog"

var (
	registerOnce sync.Once

	searchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of book searches by field and match type",
	}, []string{"field", "match_type"})
	searchShortCircuits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_short_circuits_total",
		Help:      "Searches answered empty without a storage round-trip, by field",
	}, []string{"field"})
	searchResults = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_results",
		Help:      "Number of books returned per search by field",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
	}, []string{"field"})
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method and status code",
	}, []string{"method", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

// Register adds the collectors to the global Prometheus registry (idempotent).
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(searchesTotal, searchShortCircuits, searchResults, httpRequests, httpDuration)
	})
}

func IncSearch(field, matchType string)  { searchesTotal.WithLabelValues(field, matchType).Inc() }
func IncSearchShortCircuit(field string) { searchShortCircuits.WithLabelValues(field).Inc() }
func ObserveSearchResults(field string, n int) {
	searchResults.WithLabelValues(field).Observe(float64(n))
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method).Observe(d.Seconds())
}
