package fieldmap

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var amountWireFormat = regexp.MustCompile(`^\d+,\d{2}$`)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"integer", 10, "10,00"},
		{"one", 1, "1,00"},
		{"one tenth", 0.1, "0,10"},
		{"one cent", 0.01, "0,01"},
		{"rounds up to next unit", 9.99999, "10,00"},
		{"pads one fractional digit", 10.9, "10,90"},
		{"truncates extra digits", 9.1111, "9,11"},
		{"string with dot", "100.00", "100,00"},
		{"decimal", decimal.RequireFromString("35.465"), "35,47"},
		{"zero", 0, "0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseAmount(tt.input)
			require.NoError(t, err)

			got := FormatAmount(d)
			assert.Equal(t, tt.expected, got)
			assert.Regexp(t, amountWireFormat, got)
		})
	}
}

func TestFormatAmountCents(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{"10.50", "1050"},
		{10.0, "1000"},
		{0.01, "1"},
		{decimal.NewFromInt(2), "200"},
	}

	for _, tt := range tests {
		d, err := ParseAmount(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, FormatAmountCents(d), "input %v", tt.input)
	}
}

func TestParseAmount_Rejects(t *testing.T) {
	for _, input := range []any{"-1.00", -5, "abc", struct{}{}, "1,00"} {
		_, err := ParseAmount(input)
		assert.Error(t, err, "input %v", input)
	}
}
