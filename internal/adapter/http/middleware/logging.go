package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"agenda_rastreadores/pkg/log"
)

// RequestLogger writes one structured line per request.
func RequestLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		kv := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if actor, ok := ActorFromContext(c); ok {
			kv = append(kv, "actor", actor.Identity(), "role", string(actor.Role))
		}

		switch {
		case len(c.Errors) > 0:
			logger.Error(c.Errors.Last(), "request failed", kv...)
		case c.Writer.Status() >= 500:
			logger.Warn("request failed", kv...)
		default:
			logger.Info("request served", kv...)
		}
	}
}

// Recovery turns a panic into a 500 and logs it.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Warn("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(500)
	})
}
