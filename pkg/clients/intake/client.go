package intake

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/medireon/site/pkg/errors"
	"github.com/medireon/site/pkg/logger"
)

// Client defines the interface for forwarding leads to the form-intake endpoint
type Client interface {
	Submit(ctx context.Context, fields url.Values) error
}

type clientImpl struct {
	endpoint   string
	httpClient *http.Client
	logg       *logger.Logger
}

// NewClient creates a new intake client. An empty endpoint yields a client
// whose every submission fails.
func NewClient(endpoint string, timeout time.Duration, logg *logger.Logger) Client {
	if logg == nil {
		logg = logger.Nop()
	}
	return &clientImpl{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: &http.Client{Timeout: timeout},
		logg:       logg,
	}
}

// Submit sends one URL-encoded POST. The response body is drained but not
// interpreted: any HTTP status counts as delivered, only transport failures
// are errors. There is no retry.
func (c *clientImpl) Submit(ctx context.Context, fields url.Values) error {
	if c.endpoint == "" {
		return pkgerrors.New(pkgerrors.CodeDependency, "intake endpoint not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(fields.Encode()))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "error creating intake request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "error sending to intake")
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), "intake.read_body_failed")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ctx = c.logg.WithFields(ctx, map[string]any{
			"status": resp.StatusCode,
			"body":   truncate(string(body), 256),
		})
		c.logg.Warn(ctx, "intake.non_success_status")
		return nil
	}

	c.logg.Debug(c.logg.WithField(ctx, "status", resp.StatusCode), "intake.delivered")
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s…(%d bytes)", s[:n], len(s))
}
