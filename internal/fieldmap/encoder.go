package fieldmap

import (
	pkgerrors "github.com/kevin07696/braspag-go/pkg/errors"
)

// Encoder turns one parameter into its wire value. present is false when
// the caller did not supply the key.
type Encoder func(v any, present bool) (string, error)

// Entry maps an internal parameter key onto a gateway field
type Entry struct {
	Key     string
	WireKey string
	Encode  Encoder
}

// Table is the full set of fields one operation sends
type Table []Entry

// Body is an encoded request: gateway field name -> value
type Body map[string]string

// Encode applies every entry of the table to p. The result holds exactly
// the table's wire keys.
func (t Table) Encode(p map[string]any) (Body, error) {
	body := make(Body, len(t))
	for _, e := range t {
		enc := e.Encode
		if enc == nil {
			enc = PassThrough
		}
		v, ok := Lookup(p, e.Key)
		wire, err := enc(v, ok)
		if err != nil {
			return nil, err
		}
		body[e.WireKey] = wire
	}
	return body, nil
}

// WireKeys lists the table's gateway field names in declaration order
func (t Table) WireKeys() []string {
	keys := make([]string, len(t))
	for i, e := range t {
		keys[i] = e.WireKey
	}
	return keys
}

// PassThrough sends the value as a string, or "" when absent
func PassThrough(v any, present bool) (string, error) {
	if !present {
		return "", nil
	}
	return Stringify(v), nil
}

// Amount sends a decimal with a comma separator and two fractional digits
func Amount(v any, present bool) (string, error) {
	if !present {
		return "", nil
	}
	d, err := ParseAmount(v)
	if err != nil {
		return "", pkgerrors.ErrInvalidAmountParam
	}
	return FormatAmount(d), nil
}

// AmountCents sends a decimal as an integer number of cents
func AmountCents(v any, present bool) (string, error) {
	if !present {
		return "", nil
	}
	d, err := ParseAmount(v)
	if err != nil {
		return "", pkgerrors.ErrInvalidAmountParam
	}
	return FormatAmountCents(d), nil
}

// Code looks the value up in a payment method table
func Code(table CodeTable) Encoder {
	return func(v any, present bool) (string, error) {
		if !present {
			return "", nil
		}
		code, ok := table.Lookup(v)
		if !ok {
			return "", pkgerrors.ErrInvalidPaymentMethod
		}
		return code, nil
	}
}

// Constant always sends s regardless of the parameter
func Constant(s string) Encoder {
	return func(any, bool) (string, error) {
		return s, nil
	}
}
