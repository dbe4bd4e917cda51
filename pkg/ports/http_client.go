package ports

import "net/http"

// HTTPClient is a minimal HTTP client interface for making requests
// *http.Client satisfies it; tests inject mocks
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
