package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger tags every request with an id and writes a structured access
// log line once the handler chain finishes.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := uuid.NewString()
		ctx.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		ctx.Next()

		entry := logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
			"status":     ctx.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		})

		if len(ctx.Errors) > 0 {
			entry.Error(ctx.Errors.String())
		} else {
			entry.Info("request completed")
		}
	}
}
