package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/medireon/site/pkg/errors"
	"github.com/medireon/site/pkg/logger"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// WantsJSON reports whether the client prefers JSON over an HTML page.
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// StatusFor maps an error to the HTTP status its code carries.
func StatusFor(err error) int {
	return pkgerrors.MetadataFor(pkgerrors.CodeOf(err)).HTTPStatus
}

// WriteError writes the JSON error envelope for err and aborts the chain.
func WriteError(c *gin.Context, logg *logger.Logger, err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeNotFound:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	payload := ErrorEnvelope{
		Error: APIError{
			Code:    string(typed.Code()),
			Message: msg,
		},
	}
	if meta.DetailsAllowed {
		payload.Error.Details = typed.Details()
	}

	if logg != nil {
		ctx := logg.WithFields(c.Request.Context(), map[string]any{
			"error_code": string(typed.Code()),
			"status":     meta.HTTPStatus,
		})
		if meta.HTTPStatus >= http.StatusInternalServerError {
			logg.Error(ctx, "request.error", typed)
		} else {
			logg.Warn(logg.WithField(ctx, "error", typed.Error()), "request.rejected")
		}
	}

	c.AbortWithStatusJSON(meta.HTTPStatus, payload)
}
