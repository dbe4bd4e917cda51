package http

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

// HTTPClientConfig holds HTTP client configuration
type HTTPClientConfig struct {
	// Proxy used for every request. Nil means direct connections.
	ProxyURL *url.URL

	// Connection pooling
	MaxIdleConns        int           // Total idle connections across all hosts
	MaxIdleConnsPerHost int           // Idle connections per host
	IdleConnTimeout     time.Duration // How long idle connections stay alive

	// Timeouts. Zero disables the timeout.
	DialTimeout           time.Duration // TCP connection timeout (open timeout)
	TLSHandshakeTimeout   time.Duration // TLS handshake timeout
	ResponseHeaderTimeout time.Duration // Waiting for response headers (read timeout)

	// Keep-alive
	KeepAlive time.Duration

	// TLS
	MinTLSVersion uint16
}

// DefaultClientConfig returns the pool settings used against the Braspag
// hosts, with no proxy and no timeouts
func DefaultClientConfig() *HTTPClientConfig {
	return &HTTPClientConfig{
		// Braspag is two hosts at most (pagador and the protected card service)
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,

		KeepAlive: 60 * time.Second,

		MinTLSVersion: tls.VersionTLS12,
	}
}

// BraspagClientConfig applies the gateway connection options on top of
// DefaultClientConfig. An empty proxy means no proxy.
func BraspagClientConfig(proxy string, openTimeout, readTimeout time.Duration) (*HTTPClientConfig, error) {
	cfg := DefaultClientConfig()
	if proxy != "" {
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url %q: %w", proxy, err)
		}
		cfg.ProxyURL = u
	}
	cfg.DialTimeout = openTimeout
	cfg.TLSHandshakeTimeout = openTimeout
	cfg.ResponseHeaderTimeout = readTimeout
	return cfg, nil
}

// ExchangeTimeout bounds a whole request, body read included, for the
// given open and read timeouts. ResponseHeaderTimeout alone stops at the
// headers. A zero read timeout means no bound.
func ExchangeTimeout(openTimeout, readTimeout time.Duration) time.Duration {
	if readTimeout <= 0 {
		return 0
	}
	return openTimeout + readTimeout
}

// NewHTTPClient creates an HTTP client with the given configuration.
// timeout bounds the whole exchange; zero means none.
func NewHTTPClient(cfg *HTTPClientConfig, timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	transport := &http.Transport{
		Proxy:       nil,
		DialContext: dialer.DialContext,

		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,

		TLSClientConfig: &tls.Config{
			MinVersion: cfg.MinTLSVersion,
		},

		ForceAttemptHTTP2: true,
	}
	if cfg.ProxyURL != nil {
		transport.Proxy = http.ProxyURL(cfg.ProxyURL)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
