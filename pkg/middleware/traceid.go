package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDHeader carries the request's trace id back to the caller and is
// echoed into every APIResponse envelope.
const TraceIDHeader = "X-Trace-ID"

// TraceIDMiddleware tags each request with a trace id. An id supplied by an
// upstream proxy via TraceIDHeader is kept so traces stay continuous across
// hops; otherwise a fresh one is minted.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set("trace_id", traceID)
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Next()
	}
}
