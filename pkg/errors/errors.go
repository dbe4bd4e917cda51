package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the category of error for handling
type ErrorCategory string

const (
	CategoryParameter     ErrorCategory = "parameter"     // caller input rejected before any request
	CategoryGateway       ErrorCategory = "gateway"       // known error message reported by Braspag
	CategoryUnknown       ErrorCategory = "unknown"       // unrecognized gateway response shape
	CategoryConfiguration ErrorCategory = "configuration" // invalid client configuration
)

// ErrorCode is a machine-readable failure code
type ErrorCode string

const (
	CodeIncompleteParams          ErrorCode = "INCOMPLETE_PARAMS"
	CodeInvalidOrderID            ErrorCode = "INVALID_ORDER_ID"
	CodeInvalidPaymentMethod      ErrorCode = "INVALID_PAYMENT_METHOD"
	CodeInvalidCustomerName       ErrorCode = "INVALID_CUSTOMER_NAME"
	CodeInvalidCustomerID         ErrorCode = "INVALID_CUSTOMER_ID"
	CodeInvalidHolder             ErrorCode = "INVALID_HOLDER"
	CodeInvalidNumber             ErrorCode = "INVALID_NUMBER"
	CodeInvalidInstructions       ErrorCode = "INVALID_INSTRUCTIONS"
	CodeInvalidExpirationDate     ErrorCode = "INVALID_EXPIRATION_DATE"
	CodeInvalidSecurityCode       ErrorCode = "INVALID_SECURITY_CODE"
	CodeInvalidNumberPayments     ErrorCode = "INVALID_NUMBER_PAYMENTS"
	CodeInvalidNumberInstallments ErrorCode = "INVALID_NUMBER_INSTALLMENTS"
	CodeInvalidJustClickKey       ErrorCode = "INVALID_JUST_CLICK_KEY"
	CodeInvalidAmount             ErrorCode = "INVALID_AMOUNT"
	CodeInvalidMerchantID         ErrorCode = "INVALID_MERCHANT_ID"
	CodeInvalidStringFormat       ErrorCode = "INVALID_STRING_FORMAT"
	CodeInvalidEnvironment        ErrorCode = "INVALID_ENVIRONMENT"
	CodeUnknown                   ErrorCode = "UNKNOWN_ERROR"
)

// Error is a typed Braspag client failure.
// errors.Is compares by Code, so copies carrying a Field or GatewayMessage
// still match the package sentinels.
type Error struct {
	Code           ErrorCode
	Category       ErrorCategory
	Message        string
	Field          string
	GatewayMessage string
}

func (e *Error) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s (field: %s)", e.Code, e.Message, e.Field)
	case e.GatewayMessage != "":
		return fmt.Sprintf("%s: %s (gateway: %s)", e.Code, e.Message, e.GatewayMessage)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target is an *Error with the same code
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// WithField returns a copy of e naming the offending parameter
func (e *Error) WithField(field string) *Error {
	c := *e
	c.Field = field
	return &c
}

// WithGatewayMessage returns a copy of e carrying the raw gateway message
func (e *Error) WithGatewayMessage(msg string) *Error {
	c := *e
	c.GatewayMessage = msg
	return &c
}

// NewError creates a new typed error
func NewError(code ErrorCode, category ErrorCategory, message string) *Error {
	return &Error{
		Code:     code,
		Category: category,
		Message:  message,
	}
}

// Parameter errors
var (
	ErrIncompleteParams          = NewError(CodeIncompleteParams, CategoryParameter, "missing parameter")
	ErrInvalidOrderID            = NewError(CodeInvalidOrderID, CategoryParameter, "invalid order id")
	ErrInvalidPaymentMethod      = NewError(CodeInvalidPaymentMethod, CategoryParameter, "invalid payment method")
	ErrInvalidCustomerName       = NewError(CodeInvalidCustomerName, CategoryParameter, "invalid customer name")
	ErrInvalidCustomerID         = NewError(CodeInvalidCustomerID, CategoryParameter, "invalid customer id")
	ErrInvalidHolder             = NewError(CodeInvalidHolder, CategoryParameter, "invalid card holder")
	ErrInvalidNumber             = NewError(CodeInvalidNumber, CategoryParameter, "invalid boleto number")
	ErrInvalidInstructions       = NewError(CodeInvalidInstructions, CategoryParameter, "invalid instructions")
	ErrInvalidExpirationDate     = NewError(CodeInvalidExpirationDate, CategoryParameter, "invalid expiration date")
	ErrInvalidSecurityCode       = NewError(CodeInvalidSecurityCode, CategoryParameter, "invalid security code")
	ErrInvalidNumberPayments     = NewError(CodeInvalidNumberPayments, CategoryParameter, "invalid number of payments")
	ErrInvalidNumberInstallments = NewError(CodeInvalidNumberInstallments, CategoryParameter, "invalid number of installments")
	ErrInvalidJustClickKey       = NewError(CodeInvalidJustClickKey, CategoryParameter, "invalid just click key")

	// ErrInvalidAmountParam shares CodeInvalidAmount with the gateway-reported
	// ErrInvalidAmount, so errors.Is matches either; it marks amounts rejected
	// before any request is sent
	ErrInvalidAmountParam = NewError(CodeInvalidAmount, CategoryParameter, "invalid amount")
)

// Gateway-reported errors
var (
	ErrInvalidAmount       = NewError(CodeInvalidAmount, CategoryGateway, "invalid amount")
	ErrInvalidMerchantID   = NewError(CodeInvalidMerchantID, CategoryGateway, "invalid merchant id")
	ErrInvalidStringFormat = NewError(CodeInvalidStringFormat, CategoryGateway, "input string was not in a correct format")
	ErrUnknown             = NewError(CodeUnknown, CategoryUnknown, "unknown gateway error")
	ErrInvalidEnvironment  = NewError(CodeInvalidEnvironment, CategoryConfiguration, "invalid environment")
)

// IsParameterError reports whether err was raised before any request was sent
func IsParameterError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == CategoryParameter
}

// GetErrorCode extracts the code from err, or "" when err is not a typed error
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
