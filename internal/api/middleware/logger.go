package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// loggerKey is the gin context key holding the request-scoped logger
const loggerKey = "request-logger"

// RequestLogger returns middleware that tags every request with a correlation
// ID and logs its outcome
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		reqLogger := logger.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)
		c.Set(loggerKey, reqLogger)
		c.Header("X-Request-Id", requestID)

		c.Next()

		reqLogger.Info("request completed",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}

// Logger returns the request-scoped logger set by RequestLogger, falling back
// to the default logger when the middleware is not installed
func Logger(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if logger, ok := v.(*slog.Logger); ok {
			return logger
		}
	}
	return slog.Default()
}
