package secrets

import (
	"context"
	"fmt"
	"strings"

	"github.com/kevin07696/braspag-go/internal/adapters/ports"
	"go.uber.org/zap"
)

// Backend names accepted by NewReader
const (
	BackendLocal = "local"
	BackendAWS   = "aws"
	BackendVault = "vault"
)

// BackendConfig selects and configures a secret backend
type BackendConfig struct {
	Backend   string
	LocalPath string
	AWS       *AWSSecretsManagerConfig
	Vault     *VaultConfig
}

// NewReader builds the SecretReader named by cfg.Backend
func NewReader(ctx context.Context, cfg BackendConfig, logger *zap.Logger) (ports.SecretReader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch strings.ToLower(cfg.Backend) {
	case "", BackendLocal:
		return NewLocalSecretManager(cfg.LocalPath, logger), nil
	case BackendAWS:
		if cfg.AWS == nil {
			return nil, fmt.Errorf("aws backend requires configuration")
		}
		return NewAWSSecretsManagerAdapter(ctx, cfg.AWS, logger)
	case BackendVault:
		if cfg.Vault == nil {
			return nil, fmt.Errorf("vault backend requires configuration")
		}
		return NewVaultAdapter(ctx, cfg.Vault, logger)
	default:
		return nil, fmt.Errorf("unsupported secrets backend: %s", cfg.Backend)
	}
}

// ResolveMerchantID reads the merchant key stored at path.
// Surrounding whitespace, as left by editors and `echo`, is dropped.
func ResolveMerchantID(ctx context.Context, reader ports.SecretReader, path string) (string, error) {
	secret, err := reader.GetSecret(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve merchant id: %w", err)
	}

	id := strings.TrimSpace(secret.Value)
	if id == "" {
		return "", fmt.Errorf("merchant id secret %s is empty", path)
	}
	return id, nil
}
