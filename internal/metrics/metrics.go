package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by path, method and status"},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	BookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "bookings_created_total", Help: "Bookings created"},
	)
	TokensIssued = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "tokens_issued_total", Help: "Session tokens issued"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, BookingsCreated, TokensIssued)
}

// Handler returns a middleware recording request count and latency.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Exposer returns the standard Prometheus scrape handler.
func Exposer() gin.HandlerFunc { return gin.WrapH(promhttp.Handler()) }
