package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Laisky/bedrock-contentgen/common/graceful"
)

// InFlight counts requests on d so shutdown can wait for them to finish.
func InFlight(d *graceful.Drainer) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := d.BeginRequest()
		defer done()
		c.Next()
	}
}
