package tracing

import (
	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
)

// GetTraceID returns the trace id gin-middlewares assigned to the request,
// or an empty string when there is none.
func GetTraceID(c *gin.Context) string {
	traceID, err := gmw.TraceID(c)
	if err != nil {
		gmw.GetLogger(c).Debug("no trace id on request", zap.Error(err))
		return ""
	}
	return traceID.String()
}

// WithTraceID prepends the request's trace id to fields.
func WithTraceID(c *gin.Context, fields ...zap.Field) []zap.Field {
	traceID := GetTraceID(c)
	if traceID == "" {
		return fields
	}

	return append([]zap.Field{zap.String("trace_id", traceID)}, fields...)
}
