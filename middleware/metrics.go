package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Laisky/bedrock-contentgen/monitor"
)

// Metrics records the count, latency and in-flight number of HTTP requests.
// Unmatched routes share the "unmatched" label.
func Metrics(m *monitor.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := m.TrackInFlight()
		defer done()

		startedAt := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(startedAt))
	}
}
