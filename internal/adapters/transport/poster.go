package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kevin07696/braspag-go/pkg/ports"
	"github.com/kevin07696/braspag-go/pkg/security"
)

// Poster sends form-encoded requests to the pagador web services
type Poster struct {
	httpClient ports.HTTPClient
	logger     ports.Logger
}

// NewPoster creates a Poster with dependency injection
func NewPoster(httpClient ports.HTTPClient, logger ports.Logger) *Poster {
	if logger == nil {
		logger = security.NewNopLogger()
	}
	return &Poster{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Post submits body to endpoint and returns the raw response document.
// method names the operation in the logs. Errors from the HTTP client are
// returned unchanged.
func (p *Poster) Post(ctx context.Context, method, endpoint string, body map[string]string) (string, error) {
	form := make(url.Values, len(body))
	for k, v := range body {
		form.Set(k, v)
	}

	p.logger.Info("braspag request",
		ports.String("method", method),
		ports.String("url", endpoint),
		ports.Any("data", security.MaskFormData(body)),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", err
	}

	if httpResp.StatusCode >= 400 {
		p.logger.Warn("braspag non-success status",
			ports.String("method", method),
			ports.Int("status_code", httpResp.StatusCode),
		)
	}

	p.logger.Info("braspag response",
		ports.String("method", method),
		ports.String("body", security.RedactResponseXML(string(raw))),
	)

	return string(raw), nil
}
