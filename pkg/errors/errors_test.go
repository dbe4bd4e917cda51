package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesCode(t *testing.T) {
	err := ErrInvalidHolder.WithField("holder")

	assert.True(t, errors.Is(err, ErrInvalidHolder))
	assert.False(t, errors.Is(err, ErrInvalidNumber))
	assert.True(t, errors.Is(fmt.Errorf("authorize: %w", err), ErrInvalidHolder))
}

func TestError_CopiesDoNotModifySentinels(t *testing.T) {
	_ = ErrInvalidAmount.WithGatewayMessage("Invalid amount")
	_ = ErrIncompleteParams.WithField("order_id")

	assert.Empty(t, ErrInvalidAmount.GatewayMessage)
	assert.Empty(t, ErrIncompleteParams.Field)
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{name: "plain", err: ErrUnknown, expected: "UNKNOWN_ERROR: unknown gateway error"},
		{name: "field", err: ErrIncompleteParams.WithField("amount"), expected: "INCOMPLETE_PARAMS: missing parameter (field: amount)"},
		{name: "gateway", err: ErrInvalidMerchantID.WithGatewayMessage("Invalid merchantId"), expected: "INVALID_MERCHANT_ID: invalid merchant id (gateway: Invalid merchantId)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestIsParameterError(t *testing.T) {
	assert.True(t, IsParameterError(ErrInvalidOrderID.WithField("order_id")))
	assert.False(t, IsParameterError(ErrInvalidAmount))
	assert.False(t, IsParameterError(errors.New("dial tcp: timeout")))
	assert.False(t, IsParameterError(nil))
}

func TestErrInvalidAmountParam(t *testing.T) {
	err := ErrInvalidAmountParam.WithField("amount")

	assert.True(t, IsParameterError(err))
	assert.True(t, errors.Is(err, ErrInvalidAmount))
	assert.False(t, IsParameterError(ErrInvalidAmount.WithGatewayMessage("Invalid purchase amount")))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, CodeInvalidStringFormat, GetErrorCode(fmt.Errorf("wrapped: %w", ErrInvalidStringFormat)))
	assert.Equal(t, ErrorCode(""), GetErrorCode(errors.New("plain")))
}
