package xmlmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicDocument = `
<root>
  <foo>blabla</foo>
  <bar>bleble</bar>
  <baz></baz>
</root>`

const namespacedDocument = `
<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <soap:Body>
    <GetCreditCardResponse xmlns="http://www.cartaoprotegido.com.br/WebService/">
      <GetCreditCardResult>
        <Success>true</Success>
        <CorrelationId xsi:nil="true"/>
        <ErrorReportCollection/>
        <CardHolder>TESTE HOLDER</CardHolder>
        <CardNumber>0000000000000001</CardNumber>
        <CardExpiration>12/2021</CardExpiration>
        <MaskedCardNumber>000000******0001</MaskedCardNumber>
      </GetCreditCardResult>
    </GetCreditCardResponse>
  </soap:Body>
</soap:Envelope>`

func TestDecode_BasicDocument(t *testing.T) {
	result := Decode(basicDocument, Mapping{
		"foo":            Default(),
		"meu_elemento":   ByTag("bar"),
		"outro_elemento": ByTag("baz"),
	})

	assert.Equal(t, map[string]any{
		"foo":            "blabla",
		"meu_elemento":   "bleble",
		"outro_elemento": nil,
	}, result)
}

func TestDecode_Transform(t *testing.T) {
	result := Decode(basicDocument, Mapping{
		"foo":            Transform(func(*Document) any { return "value returned by transform" }),
		"meu_elemento":   ByTag("bar"),
		"outro_elemento": ByTag("baz"),
	})

	assert.Equal(t, map[string]any{
		"foo":            "value returned by transform",
		"meu_elemento":   "bleble",
		"outro_elemento": nil,
	}, result)
}

func TestDecode_TransformReceivesDocument(t *testing.T) {
	doc := `<r><expirationDate>2012-01-08T00:00:00</expirationDate></r>`
	parseDate := func(d *Document) any {
		text, ok := d.Text("expirationDate")
		if !ok {
			return nil
		}
		parsed, err := time.Parse("2006-01-02T15:04:05", text)
		if err != nil {
			return nil
		}
		return parsed
	}

	result := Decode(doc, Mapping{"expiration_date": Transform(parseDate)})

	require.IsType(t, time.Time{}, result["expiration_date"])
	assert.Equal(t, 2012, result["expiration_date"].(time.Time).Year())
}

func TestDecode_NamespacedDocument(t *testing.T) {
	result := Decode(namespacedDocument, Mapping{
		"holder":             ByTag("CardHolder"),
		"card_number":        ByTag("CardNumber"),
		"expiration":         ByTag("CardExpiration"),
		"masked_card_number": ByTag("MaskedCardNumber"),
	})

	assert.Equal(t, map[string]any{
		"holder":             "TESTE HOLDER",
		"expiration":         "12/2021",
		"card_number":        "0000000000000001",
		"masked_card_number": "000000******0001",
	}, result)
}

func TestDecode_NamespaceInsensitive(t *testing.T) {
	mapping := Mapping{
		"amount":      Default(),
		"message":     Default(),
		"return_code": Default(),
		"status":      Default(),
		"missing":     Default(),
	}

	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "no namespace",
			doc:  `<PagadorReturn><amount>5</amount><message>Transaction Successful</message><returnCode>7</returnCode><status>2</status></PagadorReturn>`,
		},
		{
			name: "default namespace",
			doc:  `<PagadorReturn xmlns="https://www.pagador.com.br/webservice/pagador"><amount>5</amount><message>Transaction Successful</message><returnCode>7</returnCode><status>2</status></PagadorReturn>`,
		},
		{
			name: "prefixed elements",
			doc:  `<p:PagadorReturn xmlns:p="https://www.pagador.com.br/webservice/pagador"><p:amount>5</p:amount><p:message>Transaction Successful</p:message><p:returnCode>7</p:returnCode><p:status>2</p:status></p:PagadorReturn>`,
		},
	}

	expected := map[string]any{
		"amount":      "5",
		"message":     "Transaction Successful",
		"return_code": "7",
		"status":      "2",
		"missing":     nil,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, expected, Decode(tt.doc, mapping))
		})
	}
}

func TestDecode_AbsentAndEmptyAreNil(t *testing.T) {
	doc := `<r><empty></empty><selfClosed/><value>x</value></r>`

	result := Decode(doc, Mapping{
		"empty":       ByTag("empty"),
		"self_closed": ByTag("selfClosed"),
		"absent":      ByTag("absent"),
		"value":       ByTag("value"),
	})

	assert.Nil(t, result["empty"])
	assert.Nil(t, result["self_closed"])
	assert.Nil(t, result["absent"])
	assert.Equal(t, "x", result["value"])
	assert.Len(t, result, 4)
}

func TestDecode_FirstElementWins(t *testing.T) {
	doc := `<r><Status>first</Status><inner><Status>second</Status></inner></r>`

	result := Decode(doc, Mapping{"status": ByTag("Status")})

	assert.Equal(t, "first", result["status"])
}

func TestDecode_TextIncludesWhitespaceAndDescendants(t *testing.T) {
	doc := `<r><CodigoAutorizacao>012543   </CodigoAutorizacao><wrap><a>1</a><b>2</b></wrap></r>`

	result := Decode(doc, Mapping{
		"authorization_code": ByTag("CodigoAutorizacao"),
		"wrap":               Default(),
	})

	assert.Equal(t, "012543   ", result["authorization_code"])
	assert.Equal(t, "12", result["wrap"])
}

func TestDecode_MalformedDocument(t *testing.T) {
	doc := `<r><amount>5</amount><broken`

	assert.NotPanics(t, func() {
		result := Decode(doc, Mapping{"amount": Default(), "status": Default()})
		assert.Equal(t, "5", result["amount"])
		assert.Nil(t, result["status"])
	})
}

func TestDecode_DeclaredCharset(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "iso-8859-1",
			doc:  "<?xml version=\"1.0\" encoding=\"iso-8859-1\"?><DadosBoleto><Sacado>Jo\xe3o</Sacado><NumeroDocumento>123</NumeroDocumento></DadosBoleto>",
		},
		{
			name: "windows-1252",
			doc:  "<?xml version=\"1.0\" encoding=\"windows-1252\"?><DadosBoleto><Sacado>Jo\xe3o</Sacado><NumeroDocumento>123</NumeroDocumento></DadosBoleto>",
		},
		{
			name: "utf-8",
			doc:  "<?xml version=\"1.0\" encoding=\"utf-8\"?><DadosBoleto><Sacado>Jo\u00e3o</Sacado><NumeroDocumento>123</NumeroDocumento></DadosBoleto>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Decode(tt.doc, Mapping{
				"payer":           ByTag("Sacado"),
				"document_number": ByTag("NumeroDocumento"),
			})

			assert.Equal(t, "Jo\u00e3o", result["payer"])
			assert.Equal(t, "123", result["document_number"])
		})
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	result := Decode("", Mapping{"status": Default()})

	assert.Equal(t, map[string]any{"status": nil}, result)
}

func TestCamelCase(t *testing.T) {
	tests := map[string]string{
		"url":            "url",
		"return_code":    "returnCode",
		"transaction_id": "transactionId",
		"a_b_c":          "aBC",
	}

	for in, want := range tests {
		assert.Equal(t, want, CamelCase(in), in)
	}
}
