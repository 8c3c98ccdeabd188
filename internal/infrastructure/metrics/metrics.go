package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Report metrics
	ReportsBuilt   *prometheus.CounterVec
	ReportErrors   *prometheus.CounterVec
	ReportDuration *prometheus.HistogramVec
	ReportRows     prometheus.Histogram
	PostingsLoaded prometheus.Histogram

	// Report cache metrics
	ReportCacheHits   prometheus.Counter
	ReportCacheMisses prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisDuration   *prometheus.HistogramVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Report metrics
		ReportsBuilt: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobalance_reports_built_total",
				Help: "Total number of trial balance reports built",
			},
			[]string{"type"},
		),
		ReportErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobalance_report_errors_total",
				Help: "Total number of report build errors by type",
			},
			[]string{"error_type"},
		),
		ReportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gobalance_report_duration_seconds",
				Help:    "Duration of report builds",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"type"},
		),
		ReportRows: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobalance_report_rows",
			Help:    "Rows in built reports",
			Buckets: prometheus.ExponentialBuckets(100, 4, 8),
		}),
		PostingsLoaded: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobalance_postings_loaded",
			Help:    "Posting entries fetched per report build",
			Buckets: prometheus.ExponentialBuckets(100, 4, 10),
		}),

		// Report cache metrics
		ReportCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobalance_report_cache_hits_total",
			Help: "Total report cache hits",
		}),
		ReportCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobalance_report_cache_misses_total",
			Help: "Total report cache misses",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobalance_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gobalance_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobalance_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gobalance_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "gobalance_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobalance_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobalance_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gobalance_redis_duration_seconds",
				Help:    "Redis operation duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobalance_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobalance_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
