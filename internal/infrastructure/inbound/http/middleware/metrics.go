package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	ports "blog-service/internal/domain/ports/output"
)

// unmatchedRoute keeps unknown paths from creating one label per URL.
const unmatchedRoute = "unmatched"

func Metrics(metrics ports.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		method := c.Request.Method

		metrics.IncrementHTTPRequests(method, path, strconv.Itoa(c.Writer.Status()))
		metrics.RecordHTTPRequestDuration(method, path, time.Since(start))
	}
}
