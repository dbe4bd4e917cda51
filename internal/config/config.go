package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all braspagctl configuration
type Config struct {
	Braspag BraspagConfig
	Secrets SecretsConfig
	Logger  LoggerConfig
	Metrics MetricsConfig
}

// BraspagConfig holds gateway client configuration
type BraspagConfig struct {
	MerchantID  string
	Environment string // production or homologation
	ProxyURL    string
	OpenTimeout time.Duration
	ReadTimeout time.Duration
}

// SecretsConfig selects where the merchant key is read from when
// BRASPAG_MERCHANT_ID is not set directly
type SecretsConfig struct {
	Backend          string // local, aws, vault
	MerchantIDSecret string // secret path holding the merchant key
	LocalPath        string
	AWSRegion        string
	AWSEndpoint      string
	VaultAddress     string
	VaultToken       string
	VaultMountPath   string
	VaultKVVersion   string
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// MetricsConfig holds the optional /metrics listener address
type MetricsConfig struct {
	Addr string // empty disables the listener
}

// LoadFromEnv loads configuration from a .env file, if present, and the environment.
// Variables already set in the environment win over the file.
func LoadFromEnv(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	openTimeout, err := getEnvAsDuration("BRASPAG_OPEN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	readTimeout, err := getEnvAsDuration("BRASPAG_READ_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Braspag: BraspagConfig{
			MerchantID:  getEnv("BRASPAG_MERCHANT_ID", ""),
			Environment: getEnv("BRASPAG_ENVIRONMENT", "homologation"),
			ProxyURL:    getEnv("BRASPAG_PROXY_URL", ""),
			OpenTimeout: openTimeout,
			ReadTimeout: readTimeout,
		},
		Secrets: SecretsConfig{
			Backend:          getEnv("SECRETS_BACKEND", "local"),
			MerchantIDSecret: getEnv("BRASPAG_MERCHANT_ID_SECRET", ""),
			LocalPath:        getEnv("SECRETS_LOCAL_PATH", "./secrets"),
			AWSRegion:        getEnv("AWS_REGION", "sa-east-1"),
			AWSEndpoint:      getEnv("AWS_SECRETS_ENDPOINT", ""),
			VaultAddress:     getEnv("VAULT_ADDR", "http://127.0.0.1:8200"),
			VaultToken:       getEnv("VAULT_TOKEN", ""),
			VaultMountPath:   getEnv("VAULT_MOUNT_PATH", "secret"),
			VaultKVVersion:   getEnv("VAULT_KV_VERSION", "v2"),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
		Metrics: MetricsConfig{
			Addr: getEnv("METRICS_ADDR", ""),
		},
	}

	if cfg.Braspag.MerchantID == "" && cfg.Secrets.MerchantIDSecret == "" {
		return nil, fmt.Errorf("BRASPAG_MERCHANT_ID or BRASPAG_MERCHANT_ID_SECRET is required")
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go durations ("15s") or bare seconds ("15")
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
