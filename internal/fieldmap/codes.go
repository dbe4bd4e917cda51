package fieldmap

// CodeTable maps a symbolic payment method onto the gateway's code
type CodeTable map[string]string

// Lookup resolves v, which may be the symbolic name or any value whose
// string form is one
func (c CodeTable) Lookup(v any) (string, bool) {
	code, ok := c[Stringify(v)]
	return code, ok
}

// Has reports whether v names a payment method in the table
func (c CodeTable) Has(v any) bool {
	_, ok := c.Lookup(v)
	return ok
}

// HomologationMethod is the test acquirer every card transaction is routed
// to outside production
const HomologationMethod = "braspag"

// CardMethods are the credit card acquirer codes
var CardMethods = CodeTable{
	"cielo_noauth_visa":        "71",
	"cielo_preauth_visa":       "73",
	"cielo_noauth_mastercard":  "120",
	"cielo_preauth_mastercard": "122",
	"cielo_noauth_elo":         "126",
	"cielo_noauth_diners":      "130",
	"redecard":                 "20",
	"redecard_preauth":         "42",
	"cielo_sitef":              "57",
	"hipercard_sitef":          "62",
	"hipercard_moip":           "90",
	"oi_paggo":                 "55",
	"amex_sitef":               "58",
	"aura_dtef":                "37",
	"redecard_sitef":           "44",
	"mastercard_moip":          "89",
	"diners_moip":              "91",
	"amex_moip":                "92",
	"getnet_visa":              "100",
	"getnet_mastercard":        "101",
	HomologationMethod:         "997",
}

// BoletoMethods are the bank codes for boleto issuing
var BoletoMethods = CodeTable{
	"bradesco":  "06",
	"cef":       "07",
	"hsbc":      "08",
	"bb":        "09",
	"real":      "10",
	"citibank":  "13",
	"itau":      "14",
	"unibanco":  "26",
	"santander": "124",
}
