package ports

import (
	"context"
)

// Secret represents a retrieved secret with metadata
type Secret struct {
	Value     string            // The secret value (e.g., merchant key)
	Version   string            // Secret version identifier
	Metadata  map[string]string // Additional secret metadata
	CreatedAt string            // When this version was created
}

// SecretReader defines the port for reading secrets from a secret management service
// Supported backends: local filesystem, AWS Secrets Manager, HashiCorp Vault
// Path format depends on implementation:
//   - Local: file path relative to the base directory
//   - AWS: secret name or full ARN, e.g. "braspag/merchant-id"
//   - Vault: path below the KV mount, e.g. "braspag/merchant"
type SecretReader interface {
	// GetSecret retrieves the current version of a secret
	// Returns error if the secret does not exist, access is denied
	// or the backend cannot be reached
	GetSecret(ctx context.Context, path string) (*Secret, error)
}
