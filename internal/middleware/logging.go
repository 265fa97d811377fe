package middleware

import (
	"time"

	"eventboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request id back to the caller.
const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id and logs method, path, status
// and duration. Bodies are never logged.
func RequestLogger() gin.HandlerFunc {
	log := logger.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header(RequestIDHeader, requestID)

		c.Next()

		log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	}
}
