package braspag

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/kevin07696/braspag-go/pkg/errors"
	"github.com/kevin07696/braspag-go/pkg/observability"
	"github.com/kevin07696/braspag-go/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authorizeResponse = `<?xml version="1.0" encoding="utf-8"?>
<PagadorReturn xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
               xmlns:xsd="http://www.w3.org/2001/XMLSchema"
               xmlns="https://www.pagador.com.br/webservice/pagador">
  <amount>5</amount>
  <message>Transaction Successful</message>
  <authorisationNumber>733610</authorisationNumber>
  <returnCode>7</returnCode>
  <status>2</status>
  <transactionId>0</transactionId>
</PagadorReturn>`

const approvedResponse = `<?xml version="1.0" encoding="utf-8"?>
<PagadorReturn xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
               xmlns:xsd="http://www.w3.org/2001/XMLSchema"
               xmlns="https://www.pagador.com.br/webservice/pagador">
  <amount>2</amount>
  <message>Approved</message>
  <returnCode>0</returnCode>
  <status>0</status>
</PagadorReturn>`

func authorizeParams() Params {
	return Params{
		"order_id":        "order-id",
		"customer_name":   strings.Repeat("W", 21),
		"amount":          "100.00",
		"payment_method":  "redecard",
		"holder":          "Joao Maria Souza",
		"card_number":     strings.Repeat("9", 10),
		"expiration":      "10/12",
		"security_code":   "123",
		"number_payments": 1,
		"type":            0,
	}
}

func TestCreditCard_Authorize_Homologation(t *testing.T) {
	tc := newTestClient(t, Homologation, authorizeResponse)

	result, err := tc.CreditCard.Authorize(context.Background(), authorizeParams())
	require.NoError(t, err)

	assert.Equal(t, "https://homologacao.pagador.com.br/webservices/pagador/Pagador.asmx/Authorize", tc.lastURL(t))
	assert.Equal(t, map[string]string{
		"merchantId":     testMerchantID,
		"order":          "",
		"orderId":        "order-id",
		"customerName":   "WWWWWWWWWWWWWWWWWWWWW",
		"amount":         "100,00",
		"paymentMethod":  "997",
		"holder":         "Joao Maria Souza",
		"cardNumber":     "9999999999",
		"expiration":     "10/12",
		"securityCode":   "123",
		"numberPayments": "1",
		"typePayment":    "0",
	}, formMap(t, tc))

	assert.Equal(t, Result{
		"amount":         "5",
		"message":        "Transaction Successful",
		"number":         "733610",
		"return_code":    "7",
		"status":         "2",
		"transaction_id": "0",
	}, result)
}

func TestCreditCard_Authorize_ProductionUsesAcquirerCode(t *testing.T) {
	tc := newTestClient(t, Production, authorizeResponse)

	_, err := tc.CreditCard.Authorize(context.Background(), authorizeParams())
	require.NoError(t, err)

	assert.Equal(t, "https://transaction.pagador.com.br/webservices/pagador/Pagador.asmx/Authorize", tc.lastURL(t))
	assert.Equal(t, "20", formMap(t, tc)["paymentMethod"])
}

func TestCreditCard_Authorize_DoesNotModifyParams(t *testing.T) {
	tc := newTestClient(t, Homologation, authorizeResponse)
	params := authorizeParams()

	_, err := tc.CreditCard.Authorize(context.Background(), params)
	require.NoError(t, err)
	assert.NotContains(t, params, "merchant_id")
}

func TestCreditCard_Authorize_ValidationSendsNothing(t *testing.T) {
	for _, key := range []string{"order_id", "amount", "payment_method", "customer_name", "holder",
		"card_number", "expiration", "security_code", "number_payments", "type"} {
		t.Run(key, func(t *testing.T) {
			tc := newTestClient(t, Homologation, authorizeResponse)
			params := authorizeParams()
			params[key] = nil

			_, err := tc.CreditCard.Authorize(context.Background(), params)
			assert.ErrorIs(t, err, pkgerrors.ErrIncompleteParams)
			assert.Empty(t, tc.http.Calls)
		})
	}
}

func TestCreditCard_Authorize_MasksLoggedCard(t *testing.T) {
	tc := newTestClient(t, Homologation, authorizeResponse)

	_, err := tc.CreditCard.Authorize(context.Background(), authorizeParams())
	require.NoError(t, err)

	require.NotEmpty(t, tc.logger.InfoCalls)
	data := tc.logger.FieldValue(tc.logger.InfoCalls[0], "data").(map[string]string)
	assert.Equal(t, "************9999", data["cardNumber"])
	assert.Equal(t, "***", data["securityCode"])
}

func TestCreditCard_Capture(t *testing.T) {
	tc := newTestClient(t, Homologation, approvedResponse)

	result, err := tc.CreditCard.Capture(context.Background(), "order id qualquer")
	require.NoError(t, err)

	assert.Equal(t, "https://homologacao.pagador.com.br/webservices/pagador/Pagador.asmx/Capture", tc.lastURL(t))
	assert.Equal(t, map[string]string{"orderId": "order id qualquer", "merchantId": testMerchantID}, formMap(t, tc))
	assert.Equal(t, Result{
		"amount":         "2",
		"number":         nil,
		"message":        "Approved",
		"return_code":    "0",
		"status":         "0",
		"transaction_id": nil,
	}, result)
}

func TestCreditCard_PartialCapture(t *testing.T) {
	tc := newTestClient(t, Homologation, approvedResponse)

	result, err := tc.CreditCard.PartialCapture(context.Background(), "order-id", decimal.NewFromFloat(10.0))
	require.NoError(t, err)

	assert.Equal(t, "https://homologacao.pagador.com.br/webservices/pagador/Pagador.asmx/CapturePartial", tc.lastURL(t))
	assert.Equal(t, map[string]string{
		"orderId":       "order-id",
		"captureAmount": "10,00",
		"merchantId":    testMerchantID,
	}, formMap(t, tc))
	assert.Equal(t, "Approved", result["message"])

	_, err = tc.CreditCard.PartialCapture(context.Background(), "order-id", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidAmount)
	assert.True(t, pkgerrors.IsParameterError(err))
	assert.Empty(t, tc.logger.WarnCalls, "caller mistakes are not logged as gateway failures")
}

func TestCreditCard_Void(t *testing.T) {
	tc := newTestClient(t, Homologation, approvedResponse)

	result, err := tc.CreditCard.Void(context.Background(), "order-id")
	require.NoError(t, err)

	assert.Equal(t, "https://homologacao.pagador.com.br/webservices/pagador/Pagador.asmx/VoidTransaction", tc.lastURL(t))
	assert.Equal(t, map[string]string{"order": "order-id", "merchantId": testMerchantID}, formMap(t, tc))
	assert.Equal(t, "0", result["status"])
}

func TestCreditCard_EmptyOrderID(t *testing.T) {
	tc := newTestClient(t, Homologation, approvedResponse)
	ctx := context.Background()

	_, err := tc.CreditCard.Capture(ctx, "")
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidOrderID)
	_, err = tc.CreditCard.PartialCapture(ctx, "", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidOrderID)
	_, err = tc.CreditCard.Void(ctx, "")
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidOrderID)
	_, err = tc.CreditCard.Info(ctx, "")
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidOrderID)
	_, err = tc.CreditCard.Status(ctx, "")
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidOrderID)

	assert.Empty(t, tc.http.Calls)
}

const cardInfoResponse = `<DadosCartao xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
             xmlns:xsd="http://www.w3.org/2001/XMLSchema"
             xmlns="http://www.pagador.com.br/">
  <NumeroComprovante>11111</NumeroComprovante>
  <Autenticada>false</Autenticada>
  <NumeroAutorizacao>557593</NumeroAutorizacao>
  <NumeroCartao>345678*****0007</NumeroCartao>
  <NumeroTransacao>101001225645</NumeroTransacao>
</DadosCartao>`

func TestCreditCard_Info(t *testing.T) {
	tc := newTestClient(t, Homologation, cardInfoResponse)

	result, err := tc.CreditCard.Info(context.Background(), "order-id")
	require.NoError(t, err)

	assert.Equal(t, "https://homologacao.pagador.com.br/pagador/webservice/pedido.asmx/GetDadosCartao", tc.lastURL(t))
	assert.Equal(t, map[string]string{"loja": testMerchantID, "numeroPedido": "order-id"}, formMap(t, tc))
	assert.Equal(t, Result{
		"checking_number":     "11111",
		"certified":           "false",
		"autorization_number": "557593",
		"card_number":         "345678*****0007",
		"transaction_number":  "101001225645",
	}, result)
}

func TestCreditCard_Info_ProductionPath(t *testing.T) {
	tc := newTestClient(t, Production, cardInfoResponse)

	_, err := tc.CreditCard.Info(context.Background(), "order-id")
	require.NoError(t, err)
	assert.Equal(t, "https://transaction.pagador.com.br/webservices/pagador/pedido.asmx/GetDadosCartao", tc.lastURL(t))
}

func TestCreditCard_Info_EmptyCheckingNumber(t *testing.T) {
	bad := strings.Replace(cardInfoResponse, "<NumeroComprovante>11111</NumeroComprovante>",
		"<NumeroComprovante></NumeroComprovante>", 1)
	tc := newTestClient(t, Homologation, bad)

	_, err := tc.CreditCard.Info(context.Background(), "order-id")
	assert.ErrorIs(t, err, pkgerrors.ErrUnknown)
}

const statusResponse = `<?xml version="1.0" encoding="utf-8"?>
<DadosPedido xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns="http://www.pagador.com.br/">
  <CodigoAutorizacao>012543   </CodigoAutorizacao>
  <CodigoPagamento>42</CodigoPagamento>
  <FormaPagamento>Redecard Webservice PreAuth</FormaPagamento>
  <NumeroParcelas>1</NumeroParcelas>
  <Status>3</Status>
  <Valor>35.46</Valor>
  <DataPagamento>2/28/2015 12:00:00 AM</DataPagamento>
  <DataPedido>2/28/2015 9:56:35 AM</DataPedido>
  <TransId>0301122</TransId>
</DadosPedido>`

func TestCreditCard_Status(t *testing.T) {
	tc := newTestClient(t, Homologation, statusResponse)

	result, err := tc.CreditCard.Status(context.Background(), "order-id")
	require.NoError(t, err)

	assert.Equal(t, "https://homologacao.pagador.com.br/webservices/pagador/Pagador.asmx/GetDadosPedido", tc.lastURL(t))
	assert.Equal(t, map[string]string{"order": "order-id", "merchantId": testMerchantID}, formMap(t, tc))
	assert.Equal(t, Result{
		"authorization_code": "012543   ",
		"payment_code":       "42",
		"payment_method":     "Redecard Webservice PreAuth",
		"installments":       "1",
		"status":             "3",
		"value":              "35.46",
		"payment_date":       "2/28/2015 12:00:00 AM",
		"order_date":         "2/28/2015 9:56:35 AM",
		"transaction_id":     "0301122",
		"error_code":         nil,
		"error_message":      nil,
	}, result)
}

func TestCreditCard_Status_MissingStatus(t *testing.T) {
	tc := newTestClient(t, Homologation, "<DadosPedido/>")

	_, err := tc.CreditCard.Status(context.Background(), "order-id")
	assert.ErrorIs(t, err, pkgerrors.ErrUnknown)
}

func TestCreditCard_TransportErrorIsReturnedUnchanged(t *testing.T) {
	timeout := errors.New("net/http: timeout awaiting response headers")
	cfg := DefaultConfig(testMerchantID, Homologation)
	cfg.HTTPClient = mocks.NewMockHTTPClient(func(*http.Request) (*http.Response, error) {
		return nil, timeout
	})
	c, err := New(cfg)
	require.NoError(t, err)

	_, err = c.CreditCard.Capture(context.Background(), "order-id")
	assert.Same(t, timeout, err)
}

func TestCreditCard_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := DefaultConfig(testMerchantID, Homologation)
	cfg.HTTPClient = mocks.NewMockHTTPClient(func(*http.Request) (*http.Response, error) {
		return mocks.NewXMLResponse(http.StatusOK, "<DadosPedido/>"), nil
	})
	cfg.Metrics = observability.NewGatewayMetrics(reg)
	c, err := New(cfg)
	require.NoError(t, err)

	_, _ = c.CreditCard.Status(context.Background(), "order-id")
	_, _ = c.CreditCard.Capture(context.Background(), "order-id")

	expected := `
# HELP braspag_gateway_requests_total Total number of Braspag gateway operations
# TYPE braspag_gateway_requests_total counter
braspag_gateway_requests_total{operation="capture",outcome="success"} 1
braspag_gateway_requests_total{operation="status",outcome="unknown_error"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "braspag_gateway_requests_total"))
}

func TestCreditCard_DelegatesToProtectedCard(t *testing.T) {
	tc := newTestClient(t, Homologation, "")

	_, err := tc.CreditCard.Get(context.Background(), "bla")
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidJustClickKey)

	_, err = tc.CreditCard.Save(context.Background(), Params{})
	assert.ErrorIs(t, err, pkgerrors.ErrIncompleteParams)

	_, err = tc.CreditCard.JustClickShop(context.Background(), Params{})
	assert.ErrorIs(t, err, pkgerrors.ErrIncompleteParams)

	assert.Zero(t, tc.soap.Calls)
}
