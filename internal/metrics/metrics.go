package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steam_analytics_http_requests_total",
			Help: "HTTP requests by path, method and status.",
		},
		[]string{"path", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "steam_analytics_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	datasetLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "steam_analytics_dataset_load_duration_seconds",
			Help:    "Time spent loading and preparing the dataset.",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	datasetRows = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "steam_analytics_dataset_rows",
			Help: "Rows in the current snapshot.",
		},
	)

	cacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "steam_analytics_response_cache_hits_total",
			Help: "Aggregate response cache hits.",
		},
	)

	cacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "steam_analytics_response_cache_misses_total",
			Help: "Aggregate response cache misses.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequests,
		httpDuration,
		datasetLoadDuration,
		datasetRows,
		cacheHits,
		cacheMisses,
	)
}

// ObserveDatasetLoad records one dataset load.
func ObserveDatasetLoad(d time.Duration, rows int) {
	datasetLoadDuration.Observe(d.Seconds())
	datasetRows.Set(float64(rows))
}

// CacheHit and CacheMiss count aggregate response cache outcomes.
func CacheHit()  { cacheHits.Inc() }
func CacheMiss() { cacheMisses.Inc() }

// Middleware instruments every request with a counter and latency histogram.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(started).Seconds())
	}
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
