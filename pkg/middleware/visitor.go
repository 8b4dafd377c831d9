package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medireon/site/pkg/logger"
)

// VisitorCookie names the cookie carrying the anonymous visitor id.
const VisitorCookie = "medireon-visitor"

const visitorMaxAge = 365 * 24 * time.Hour

type contextKey string

const ctxVisitorID contextKey = "visitor_id"

func VisitorIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxVisitorID).(string); ok {
		return v
	}
	return ""
}

// WithVisitorID injects the visitor identifier into the context.
func WithVisitorID(ctx context.Context, visitorID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxVisitorID, visitorID)
}

// VisitorID gives every browser a stable anonymous id so per-visitor state
// (the subscribed flag, in-flight submissions) has a key.
func VisitorID(logg *logger.Logger, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookie)
		if err == nil {
			_, err = uuid.Parse(id)
		}
		if err != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, id, int(visitorMaxAge.Seconds()), "/", "", secure, true)
		}

		ctx := WithVisitorID(c.Request.Context(), id)
		if logg != nil {
			ctx = logg.WithVisitorID(ctx, id)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
