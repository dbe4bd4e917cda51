package braspag

import (
	"regexp"
	"strings"
	"time"

	pkgerrors "github.com/kevin07696/braspag-go/pkg/errors"
	"github.com/kevin07696/braspag-go/pkg/observability"
	"github.com/kevin07696/braspag-go/pkg/ports"
)

// Environment selects the Braspag host set
type Environment string

const (
	Production   Environment = "production"
	Homologation Environment = "homologation"
)

const (
	productionBaseURL            = "https://transaction.pagador.com.br"
	productionProtectedCardURL   = "https://www.cartaoprotegido.com.br/Services"
	homologationBaseURL          = "https://homologacao.pagador.com.br"
	homologationProtectedCardURL = "https://homologacao.braspag.com.br/services/testenvironment"

	protectedCardPath = "/CartaoProtegido.asmx"
)

var merchantIDPattern = regexp.MustCompile(`^\{[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}\}$`)

// Config holds everything a Client needs. The zero values of the
// optional collaborators are replaced with defaults by New.
type Config struct {
	MerchantID  string
	Environment Environment

	BaseURL          string
	ProtectedCardURL string

	// ProxyURL routes every request through an HTTP proxy. Empty means none.
	ProxyURL string
	// OpenTimeout bounds connection setup, ReadTimeout waiting for the
	// response. Zero means no timeout.
	OpenTimeout time.Duration
	ReadTimeout time.Duration

	Logger     ports.Logger
	HTTPClient ports.HTTPClient
	SOAPClient ports.SOAPClient
	Metrics    *observability.GatewayMetrics
}

// DefaultConfig returns a Config pointing at the hosts of env
func DefaultConfig(merchantID string, env Environment) Config {
	cfg := Config{
		MerchantID:  merchantID,
		Environment: env,
	}
	switch env {
	case Production:
		cfg.BaseURL = productionBaseURL
		cfg.ProtectedCardURL = productionProtectedCardURL
	default:
		cfg.BaseURL = homologationBaseURL
		cfg.ProtectedCardURL = homologationProtectedCardURL
	}
	return cfg
}

// ParseEnvironment accepts "production" or "homologation", case-insensitively
func ParseEnvironment(s string) (Environment, error) {
	switch env := Environment(strings.ToLower(strings.TrimSpace(s))); env {
	case Production, Homologation:
		return env, nil
	default:
		return "", pkgerrors.ErrInvalidEnvironment.WithField(s)
	}
}

// Validate checks the merchant id shape and the environment
func (c Config) Validate() error {
	if !merchantIDPattern.MatchString(c.MerchantID) {
		return pkgerrors.ErrInvalidMerchantID.WithField("merchant_id")
	}
	if c.Environment != Production && c.Environment != Homologation {
		return pkgerrors.ErrInvalidEnvironment.WithField("environment")
	}
	return nil
}

// IsProduction reports whether calls go to the production hosts
func (c Config) IsProduction() bool {
	return c.Environment == Production
}

// IsHomologation reports whether calls go to the staging hosts
func (c Config) IsHomologation() bool {
	return c.Environment == Homologation
}

// ProtectedCardEndpoint is the SOAP endpoint of the protected card service
func (c Config) ProtectedCardEndpoint() string {
	return strings.TrimSuffix(c.ProtectedCardURL, "/") + protectedCardPath
}

func (c Config) url(path string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + path
}
