package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/medireon/site/pkg/api/responses"
	pkgerrors "github.com/medireon/site/pkg/errors"
	"github.com/medireon/site/pkg/logger"
)

func Recoverer(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := fmt.Errorf("panic: %v", rec)
				if logg != nil {
					ctx := logg.WithFields(c.Request.Context(), map[string]any{"panic": rec})
					logg.Error(ctx, "panic.recovered", err)
				}
				responses.WriteError(c, nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "panic"))
			}
		}()
		c.Next()
	}
}
