package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"soberup/pkg/metrics"
)

func MetricsMiddleware(collectors *metrics.Collectors) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collectors.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
