package mexcapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyMetrics = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "mexc_api_latency_ms",
		Help:    "The histogram of latency returned by MEXC API",
		Buckets: prometheus.ExponentialBuckets(20, 2, 9), // 20ms to 5120ms
	},
	[]string{"path", "status_code"},
)

// recordLatencyMetrics observes the request latency, statusCode 0 means no response was received.
func recordLatencyMetrics(req *http.Request, statusCode int, latency time.Duration) {
	latencyMetrics.With(
		prometheus.Labels{
			"path":        req.URL.Path,
			"status_code": strconv.Itoa(statusCode),
		},
	).Observe(float64(latency.Milliseconds()))
}
