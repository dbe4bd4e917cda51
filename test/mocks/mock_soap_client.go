package mocks

import (
	"context"
	"sync"

	"github.com/kevin07696/braspag-go/pkg/ports"
)

// MockSOAPClient is a mock implementation of SOAPClient for testing
type MockSOAPClient struct {
	mu sync.Mutex

	// Response to return
	response string
	err      error

	// Call tracking
	Calls        int
	LastEndpoint string
	LastMessage  *ports.SOAPMessage
}

// NewMockSOAPClient creates a mock returning response and err from every call
func NewMockSOAPClient(response string, err error) *MockSOAPClient {
	return &MockSOAPClient{response: response, err: err}
}

// SetResponse sets the response to return from Call
func (m *MockSOAPClient) SetResponse(response string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.response = response
	m.err = err
}

// Call implements SOAPClient.Call
func (m *MockSOAPClient) Call(ctx context.Context, endpoint string, msg *ports.SOAPMessage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.LastEndpoint = endpoint
	m.LastMessage = msg
	return m.response, m.err
}
