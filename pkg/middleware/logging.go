package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medireon/site/pkg/logger"
)

func Logging(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logg == nil {
			c.Next()
			return
		}

		ctx := logg.WithFields(c.Request.Context(), map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		logg.Debug(ctx, "request.start")

		c.Next()

		// handlers may have added fields (visitor id) further down the chain
		ctx = logg.WithFields(c.Request.Context(), map[string]any{
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
		})
		logg.Info(ctx, "request.complete")
	}
}
