package braspag

import (
	"context"

	"github.com/kevin07696/braspag-go/internal/adapters/soap"
	"github.com/kevin07696/braspag-go/internal/adapters/transport"
	pkgerrors "github.com/kevin07696/braspag-go/pkg/errors"
	httpclient "github.com/kevin07696/braspag-go/pkg/http"
	"github.com/kevin07696/braspag-go/pkg/observability"
	"github.com/kevin07696/braspag-go/pkg/ports"
	"github.com/kevin07696/braspag-go/pkg/security"
)

// Client is a Braspag gateway client. It is immutable after New and safe
// for concurrent use.
type Client struct {
	cfg     Config
	poster  *transport.Poster
	soap    ports.SOAPClient
	logger  ports.Logger
	metrics *observability.GatewayMetrics

	CreditCard    *CreditCard
	Bill          *Bill
	ProtectedCard *ProtectedCard
}

// New validates cfg and builds a Client. Missing collaborators get
// defaults: a Nop logger, an HTTP client honoring the proxy and timeouts,
// and a SOAP client on top of it.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Logger == nil {
		cfg.Logger = security.NewNopLogger()
	}
	if cfg.HTTPClient == nil {
		httpCfg, err := httpclient.BraspagClientConfig(cfg.ProxyURL, cfg.OpenTimeout, cfg.ReadTimeout)
		if err != nil {
			return nil, err
		}
		cfg.HTTPClient = httpclient.NewHTTPClient(httpCfg, httpclient.ExchangeTimeout(cfg.OpenTimeout, cfg.ReadTimeout))
	}
	if cfg.SOAPClient == nil {
		cfg.SOAPClient = soap.NewClient(cfg.HTTPClient, cfg.Logger)
	}

	c := &Client{
		cfg:     cfg,
		poster:  transport.NewPoster(cfg.HTTPClient, cfg.Logger),
		soap:    cfg.SOAPClient,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
	c.ProtectedCard = &ProtectedCard{client: c}
	c.CreditCard = &CreditCard{client: c, protected: c.ProtectedCard}
	c.Bill = &Bill{client: c}

	return c, nil
}

// Config returns the configuration the client was built with
func (c *Client) Config() Config {
	return c.cfg
}

// track records the outcome of one operation. Use as
//
//	defer c.track("capture")(&err)
func (c *Client) track(operation string) func(*error) {
	done := c.metrics.Start(operation)
	return func(errp *error) {
		err := *errp
		done(err)
		if err != nil && !pkgerrors.IsParameterError(err) {
			c.logger.Warn("braspag operation failed",
				ports.String("operation", operation),
				ports.Err(err),
			)
		}
	}
}

func (c *Client) post(ctx context.Context, operation, path string, body map[string]string) (string, error) {
	return c.poster.Post(ctx, operation, c.cfg.url(path), body)
}

func (c *Client) call(ctx context.Context, msg *ports.SOAPMessage) (string, error) {
	return c.soap.Call(ctx, c.cfg.ProtectedCardEndpoint(), msg)
}
