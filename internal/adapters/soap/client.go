package soap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/kevin07696/braspag-go/internal/xmlmap"
	"github.com/kevin07696/braspag-go/pkg/ports"
	"github.com/kevin07696/braspag-go/pkg/security"
)

// Fault is a SOAP fault returned by the service
type Fault struct {
	Code   string
	String string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.String)
}

// Client calls the protected card web service
type Client struct {
	httpClient ports.HTTPClient
	logger     ports.Logger
}

// NewClient creates a SOAP client with dependency injection
func NewClient(httpClient ports.HTTPClient, logger ports.Logger) *Client {
	if logger == nil {
		logger = security.NewNopLogger()
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Call posts msg to endpoint and returns the raw response envelope.
// Errors from the HTTP client are returned unchanged; a response carrying
// a soap:Fault is returned as *Fault.
func (c *Client) Call(ctx context.Context, endpoint string, msg *ports.SOAPMessage) (string, error) {
	payload, err := buildEnvelope(msg)
	if err != nil {
		return "", fmt.Errorf("failed to build envelope: %w", err)
	}

	c.logger.Info("braspag request",
		ports.String("method", msg.Operation),
		ports.String("url", endpoint),
		ports.Any("data", security.MaskSOAPFields(msg.Fields)),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")
	httpReq.Header.Set("SOAPAction", `"`+msg.Namespace+msg.Operation+`"`)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", err
	}
	body := string(raw)

	c.logger.Info("braspag response",
		ports.String("method", msg.Operation),
		ports.String("body", security.RedactResponseXML(body)),
	)

	doc := xmlmap.Parse(body)
	if doc.Has("Fault") {
		code, _ := doc.Text("faultcode")
		text, _ := doc.Text("faultstring")
		return "", &Fault{Code: code, String: text}
	}

	return body, nil
}
