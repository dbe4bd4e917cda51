package braspag

import (
	"net/http"
	"testing"

	"github.com/kevin07696/braspag-go/test/mocks"
	"github.com/stretchr/testify/require"
)

const testMerchantID = "{84BE7E7F-698A-6C74-F820-AE359C2A07C2}"

type testClient struct {
	*Client
	http   *mocks.MockHTTPClient
	soap   *mocks.MockSOAPClient
	logger *mocks.MockLogger
}

// newTestClient returns a client whose HTTP calls answer with response
func newTestClient(t *testing.T, env Environment, response string) *testClient {
	t.Helper()

	httpClient := mocks.NewMockHTTPClient(func(*http.Request) (*http.Response, error) {
		return mocks.NewXMLResponse(http.StatusOK, response), nil
	})
	soapClient := mocks.NewMockSOAPClient(response, nil)
	logger := mocks.NewMockLogger()

	cfg := DefaultConfig(testMerchantID, env)
	cfg.HTTPClient = httpClient
	cfg.SOAPClient = soapClient
	cfg.Logger = logger

	c, err := New(cfg)
	require.NoError(t, err)

	return &testClient{Client: c, http: httpClient, soap: soapClient, logger: logger}
}

func (tc *testClient) lastURL(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, tc.http.Calls)
	return tc.http.Calls[len(tc.http.Calls)-1].URL.String()
}

func formMap(t *testing.T, tc *testClient) map[string]string {
	t.Helper()
	form := tc.http.LastForm()
	require.NotNil(t, form)
	out := make(map[string]string, len(form))
	for k := range form {
		out[k] = form.Get(k)
	}
	return out
}
