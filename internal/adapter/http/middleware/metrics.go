package middleware

import (
	"strconv"
	"time"

	"campo_direto/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency labeled by the route template, so
// /v1/carts/:order_id stays one series regardless of the id.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
