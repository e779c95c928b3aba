package middleware

import (
	"time"

	"github.com/architect/lostfound/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs each request with method, path, status and timing.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status_code", c.Writer.Status()),
			zap.Int("response_bytes", c.Writer.Size()),
			zap.Duration("duration", duration),
			zap.String("remote_addr", c.ClientIP()),
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("request completed with error", fields...)
		case status >= 400:
			logger.Warn("request completed with warning", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}
