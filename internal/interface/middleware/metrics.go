package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamlimeu/employeeProjectRestAPI/pkg/metrics"
)

// Metrics records a request counter and latency histogram per route.
func Metrics(m *metrics.ServerMetrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.Requests.WithLabelValues(handler, status).Inc()
		m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
	}
}
