package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParams_NormalizesNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"order_id": 483130, "amount": 10.50, "customer_name": "W" , "extra": null}`), 0600))

	params, err := readParams(path)
	require.NoError(t, err)

	assert.Equal(t, 483130, params["order_id"])
	amount, ok := params["amount"].(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, "W", params["customer_name"])
	assert.Nil(t, params["extra"])
}

func TestReadParams_Stdin(t *testing.T) {
	stdinReader = strings.NewReader(`{"just_click_key": "abc"}`)
	t.Cleanup(func() { stdinReader = os.Stdin })

	params, err := readParams("-")
	require.NoError(t, err)
	assert.Equal(t, "abc", params["just_click_key"])
}

func TestReadParams_Invalid(t *testing.T) {
	stdinReader = strings.NewReader(`[1, 2]`)
	t.Cleanup(func() { stdinReader = os.Stdin })

	_, err := readParams("-")
	assert.Error(t, err)

	_, err = readParams(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run(nil, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stderr.String(), "partial-capture")

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"refund"}, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "refund"`)
}

func TestRun_ParameterErrorIsReported(t *testing.T) {
	t.Setenv("BRASPAG_MERCHANT_ID", "{84BE7E7F-698A-6C74-F820-AE359C2A07C2}")
	t.Setenv("BRASPAG_ENVIRONMENT", "homologation")
	t.Setenv("METRICS_ADDR", "")
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	code := run([]string{"capture", "-order", ""}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), `"code":"INVALID_ORDER_ID"`)
	assert.Empty(t, stdout.String())
}

func TestRun_InvalidMerchantID(t *testing.T) {
	t.Setenv("BRASPAG_MERCHANT_ID", "not-a-guid")
	t.Setenv("BRASPAG_ENVIRONMENT", "homologation")
	t.Setenv("METRICS_ADDR", "")
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"status", "-order", "1"}, strings.NewReader(""), &stdout, &stderr))
	assert.Empty(t, stdout.String())
}
