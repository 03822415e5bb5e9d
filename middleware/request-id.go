package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Laisky/bedrock-contentgen/common/helper"
)

// RequestId tags every request with a fresh id, in the context and the response header.
func RequestId() func(c *gin.Context) {
	return func(c *gin.Context) {
		id := helper.GenRequestID()
		c.Set(helper.RequestIdKey, id)
		c.Header(helper.RequestIdKey, id)
		c.Next()
	}
}
