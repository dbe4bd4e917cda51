package fieldmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var errNegativeAmount = errors.New("amount must not be negative")

// ParseAmount converts a parameter into a decimal. Strings use "." as the
// decimal separator; floats are taken at their shortest exact representation.
func ParseAmount(v any) (decimal.Decimal, error) {
	var d decimal.Decimal
	switch t := v.(type) {
	case decimal.Decimal:
		d = t
	case *decimal.Decimal:
		if t == nil {
			return decimal.Zero, fmt.Errorf("nil amount")
		}
		d = *t
	case float64:
		d = decimal.NewFromFloat(t)
	case float32:
		d = decimal.NewFromFloat32(t)
	case int:
		d = decimal.NewFromInt(int64(t))
	case int32:
		d = decimal.NewFromInt32(t)
	case int64:
		d = decimal.NewFromInt(t)
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return decimal.Zero, err
		}
		d = parsed
	default:
		return decimal.Zero, fmt.Errorf("unsupported amount type %T", v)
	}

	if d.IsNegative() {
		return decimal.Zero, errNegativeAmount
	}
	return d, nil
}

// FormatAmount renders d with two fractional digits and a comma separator:
// 9.99999 becomes "10,00". Rounding is half away from zero.
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// FormatAmountCents renders d as an integer number of cents: 10.50 becomes "1050"
func FormatAmountCents(d decimal.Decimal) string {
	return d.Shift(2).Round(0).String()
}
