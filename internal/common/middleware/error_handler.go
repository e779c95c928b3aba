package middleware

import (
	"github.com/architect/lostfound/internal/common/errors"
	"github.com/architect/lostfound/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler catches panics and converts them to proper error responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("request panicked",
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", r),
				)
				appErr := errors.Internal("internal server error", "")
				c.JSON(appErr.Status, appErr)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONErrorResponse wraps errors in consistent JSON format. Storage
// failures are logged here and surfaced as opaque internal errors.
func JSONErrorResponse(c *gin.Context, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.Internal("internal server error", "")
	}

	if appErr.Status >= 500 {
		logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("code", appErr.Code),
			zap.String("details", appErr.Details),
		)
		// Internal detail stays in the logs, not the response body.
		appErr = errors.Internal(appErr.Message, "")
	}

	c.JSON(appErr.Status, appErr)
}
