package braspag

import (
	"context"
	"strings"
	"time"

	"github.com/kevin07696/braspag-go/internal/fieldmap"
	"github.com/kevin07696/braspag-go/internal/validation"
	"github.com/kevin07696/braspag-go/internal/xmlmap"
	pkgerrors "github.com/kevin07696/braspag-go/pkg/errors"
	"github.com/kevin07696/braspag-go/pkg/timeutil"
	"github.com/shopspring/decimal"
)

const (
	createBoletoPath           = "/webservices/pagador/Boleto.asmx/CreateBoleto"
	productionBoletoInfoPath   = "/webservices/pagador/pedido.asmx/GetDadosBoleto"
	homologationBoletoInfoPath = "/pagador/webservice/pedido.asmx/GetDadosBoleto"
)

// boletoMessages are the creation failures the gateway reports by message
var boletoMessages = map[string]*pkgerrors.Error{
	"Invalid merchantId":                        pkgerrors.ErrInvalidMerchantID,
	"Invalid purchase amount":                   pkgerrors.ErrInvalidAmount,
	"Invalid payment method":                    pkgerrors.ErrInvalidPaymentMethod,
	"Input string was not in a correct format.": pkgerrors.ErrInvalidStringFormat,
}

var boletoMapping = xmlmap.Mapping{
	"url":             xmlmap.Default(),
	"amount":          xmlmap.Default(),
	"number":          xmlmap.ByTag("boletoNumber"),
	"expiration_date": xmlmap.Transform(expirationDate),
	"return_code":     xmlmap.Default(),
	"status":          xmlmap.Default(),
	"message":         xmlmap.Default(),
}

var boletoInfoMapping = xmlmap.Mapping{
	"document_number": xmlmap.ByTag("NumeroDocumento"),
	"payer":           xmlmap.ByTag("Sacado"),
	"our_number":      xmlmap.ByTag("NossoNumero"),
	"bill_line":       xmlmap.ByTag("LinhaDigitavel"),
	"document_date":   xmlmap.ByTag("DataDocumento"),
	"expiration_date": xmlmap.ByTag("DataVencimento"),
	"receiver":        xmlmap.ByTag("Cedente"),
	"bank":            xmlmap.ByTag("Banco"),
	"agency":          xmlmap.ByTag("Agencia"),
	"account":         xmlmap.ByTag("Conta"),
	"wallet":          xmlmap.ByTag("Carteira"),
	"amount":          xmlmap.ByTag("ValorDocumento"),
	"amount_invoice":  xmlmap.ByTag("ValorPago"),
	"invoice_date":    xmlmap.ByTag("DataCredito"),
}

// expirationDate parses expirationDate into a time.Time, or nil when the
// element is missing or unreadable
func expirationDate(doc *xmlmap.Document) any {
	text, ok := doc.Text("expirationDate")
	if !ok {
		return nil
	}
	t, err := timeutil.ParseGatewayDate(text)
	if err != nil {
		return nil
	}
	return t
}

// Bill groups the boleto operations
type Bill struct {
	client *Client
}

// Generate issues a boleto.
//
// Required params: order_id, amount and payment_method (a bank name such
// as "bradesco"). Optional: customer_name, customer_id, customer_identity,
// customer_identity_type, number, instructions, expiration_date (DD/MM/YY
// or a time.Time) and emails.
//
// In the result, amount is a decimal.Decimal (the raw string when it cannot
// be read as a number) and expiration_date a time.Time or nil.
func (s *Bill) Generate(ctx context.Context, params Params) (result Result, err error) {
	defer s.client.track("bill_generate")(&err)

	p := params.with("merchant_id", s.client.cfg.MerchantID)
	if t, ok := p["expiration_date"].(time.Time); ok {
		p["expiration_date"] = timeutil.FormatBoletoDate(t)
	}

	if err := validation.Boleto.Check(p); err != nil {
		return nil, err
	}

	body, err := fieldmap.BoletoTable.Encode(p)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.post(ctx, "generate", createBoletoPath, body)
	if err != nil {
		return nil, err
	}

	result = xmlmap.Decode(raw, boletoMapping)

	if msg, ok := result.String("message"); ok {
		if known, found := boletoMessages[msg]; found {
			return nil, known.WithGatewayMessage(msg)
		}
	}
	if result["status"] == nil {
		return nil, pkgerrors.ErrUnknown
	}

	if text, ok := result.String("amount"); ok {
		if amount, ok := parseGatewayAmount(text); ok {
			result["amount"] = amount
		}
	}

	return result, nil
}

// parseGatewayAmount reads "3.00" or "3,00". Anything else is left to the
// caller as the raw string.
func parseGatewayAmount(text string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(text)
	amount, err := decimal.NewFromString(text)
	if err == nil {
		return amount, true
	}
	if strings.Count(text, ",") == 1 && !strings.Contains(text, ".") {
		if amount, err := decimal.NewFromString(strings.Replace(text, ",", ".", 1)); err == nil {
			return amount, true
		}
	}
	return decimal.Zero, false
}

// Info returns the boleto issued for an order. ErrUnknown means the
// gateway did not return a document number.
func (s *Bill) Info(ctx context.Context, orderID string) (result Result, err error) {
	defer s.client.track("bill_info")(&err)

	if !validation.ValidOrderID(orderID) {
		return nil, pkgerrors.ErrInvalidOrderID.WithField("order_id")
	}

	path := homologationBoletoInfoPath
	if s.client.cfg.IsProduction() {
		path = productionBoletoInfoPath
	}

	raw, err := s.client.post(ctx, "info", path, map[string]string{
		"loja":         s.client.cfg.MerchantID,
		"numeroPedido": orderID,
	})
	if err != nil {
		return nil, err
	}

	result = xmlmap.Decode(raw, boletoInfoMapping)
	if result["document_number"] == nil {
		return nil, pkgerrors.ErrUnknown
	}
	return result, nil
}
