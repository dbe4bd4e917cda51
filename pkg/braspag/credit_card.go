package braspag

import (
	"context"

	"github.com/kevin07696/braspag-go/internal/fieldmap"
	"github.com/kevin07696/braspag-go/internal/validation"
	"github.com/kevin07696/braspag-go/internal/xmlmap"
	pkgerrors "github.com/kevin07696/braspag-go/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	authorizePath      = "/webservices/pagador/Pagador.asmx/Authorize"
	capturePath        = "/webservices/pagador/Pagador.asmx/Capture"
	partialCapturePath = "/webservices/pagador/Pagador.asmx/CapturePartial"
	voidPath           = "/webservices/pagador/Pagador.asmx/VoidTransaction"
	statusPath         = "/webservices/pagador/Pagador.asmx/GetDadosPedido"

	productionCardInfoPath   = "/webservices/pagador/pedido.asmx/GetDadosCartao"
	homologationCardInfoPath = "/pagador/webservice/pedido.asmx/GetDadosCartao"
)

// homologationAuthorizeTable routes every authorization to the test acquirer
var homologationAuthorizeTable = fieldmap.AuthorizeTable.WithEncoder("payment_method",
	fieldmap.Constant(fieldmap.CardMethods[fieldmap.HomologationMethod]))

var transactionMapping = xmlmap.Mapping{
	"amount":         xmlmap.Default(),
	"message":        xmlmap.Default(),
	"number":         xmlmap.ByTag("authorisationNumber"),
	"return_code":    xmlmap.Default(),
	"status":         xmlmap.Default(),
	"transaction_id": xmlmap.Default(),
}

var cardInfoMapping = xmlmap.Mapping{
	"checking_number":     xmlmap.ByTag("NumeroComprovante"),
	"certified":           xmlmap.ByTag("Autenticada"),
	"autorization_number": xmlmap.ByTag("NumeroAutorizacao"),
	"card_number":         xmlmap.ByTag("NumeroCartao"),
	"transaction_number":  xmlmap.ByTag("NumeroTransacao"),
}

var statusMapping = xmlmap.Mapping{
	"authorization_code": xmlmap.ByTag("CodigoAutorizacao"),
	"payment_code":       xmlmap.ByTag("CodigoPagamento"),
	"payment_method":     xmlmap.ByTag("FormaPagamento"),
	"installments":       xmlmap.ByTag("NumeroParcelas"),
	"status":             xmlmap.ByTag("Status"),
	"value":              xmlmap.ByTag("Valor"),
	"payment_date":       xmlmap.ByTag("DataPagamento"),
	"order_date":         xmlmap.ByTag("DataPedido"),
	"transaction_id":     xmlmap.ByTag("TransId"),
	"error_code":         xmlmap.ByTag("CodigoErro"),
	"error_message":      xmlmap.ByTag("MensagemErro"),
}

// CreditCard groups the pagador credit card operations
type CreditCard struct {
	client    *Client
	protected *ProtectedCard
}

// Authorize requests an authorization.
//
// Required params: order_id, amount, payment_method, customer_name, holder,
// card_number, expiration, security_code, number_payments and type.
// Optional: customer_id. In homologation the payment method is replaced by
// the test acquirer.
func (s *CreditCard) Authorize(ctx context.Context, params Params) (result Result, err error) {
	defer s.client.track("authorize")(&err)

	p := params.with("merchant_id", s.client.cfg.MerchantID)
	if err := validation.Authorize.Check(p); err != nil {
		return nil, err
	}

	table := fieldmap.AuthorizeTable
	if !s.client.cfg.IsProduction() {
		table = homologationAuthorizeTable
	}
	body, err := table.Encode(p)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.post(ctx, "authorize", authorizePath, body)
	if err != nil {
		return nil, err
	}
	return xmlmap.Decode(raw, transactionMapping), nil
}

// Capture captures a previously authorized order
func (s *CreditCard) Capture(ctx context.Context, orderID string) (result Result, err error) {
	defer s.client.track("capture")(&err)

	if !validation.ValidOrderID(orderID) {
		return nil, pkgerrors.ErrInvalidOrderID.WithField("order_id")
	}

	raw, err := s.client.post(ctx, "capture", capturePath, map[string]string{
		"orderId":    orderID,
		"merchantId": s.client.cfg.MerchantID,
	})
	if err != nil {
		return nil, err
	}
	return xmlmap.Decode(raw, transactionMapping), nil
}

// PartialCapture captures amount of a previously authorized order
func (s *CreditCard) PartialCapture(ctx context.Context, orderID string, amount decimal.Decimal) (result Result, err error) {
	defer s.client.track("partial_capture")(&err)

	if !validation.ValidOrderID(orderID) {
		return nil, pkgerrors.ErrInvalidOrderID.WithField("order_id")
	}
	if amount.IsNegative() {
		return nil, pkgerrors.ErrInvalidAmountParam.WithField("amount")
	}

	raw, err := s.client.post(ctx, "partial_capture", partialCapturePath, map[string]string{
		"orderId":       orderID,
		"captureAmount": fieldmap.FormatAmount(amount),
		"merchantId":    s.client.cfg.MerchantID,
	})
	if err != nil {
		return nil, err
	}
	return xmlmap.Decode(raw, transactionMapping), nil
}

// Void cancels an order
func (s *CreditCard) Void(ctx context.Context, orderID string) (result Result, err error) {
	defer s.client.track("void")(&err)

	if !validation.ValidOrderID(orderID) {
		return nil, pkgerrors.ErrInvalidOrderID.WithField("order_id")
	}

	raw, err := s.client.post(ctx, "void", voidPath, map[string]string{
		"order":      orderID,
		"merchantId": s.client.cfg.MerchantID,
	})
	if err != nil {
		return nil, err
	}
	return xmlmap.Decode(raw, transactionMapping), nil
}

// Info returns the card data recorded for an order. ErrUnknown means the
// gateway did not return a checking number.
func (s *CreditCard) Info(ctx context.Context, orderID string) (result Result, err error) {
	defer s.client.track("credit_card_info")(&err)

	if !validation.ValidOrderID(orderID) {
		return nil, pkgerrors.ErrInvalidOrderID.WithField("order_id")
	}

	path := homologationCardInfoPath
	if s.client.cfg.IsProduction() {
		path = productionCardInfoPath
	}

	raw, err := s.client.post(ctx, "info", path, map[string]string{
		"loja":         s.client.cfg.MerchantID,
		"numeroPedido": orderID,
	})
	if err != nil {
		return nil, err
	}

	result = xmlmap.Decode(raw, cardInfoMapping)
	if result["checking_number"] == nil {
		return nil, pkgerrors.ErrUnknown
	}
	return result, nil
}

// Status returns the order status. ErrUnknown means the gateway did not
// return a status.
func (s *CreditCard) Status(ctx context.Context, orderID string) (result Result, err error) {
	defer s.client.track("status")(&err)

	if !validation.ValidOrderID(orderID) {
		return nil, pkgerrors.ErrInvalidOrderID.WithField("order_id")
	}

	raw, err := s.client.post(ctx, "status", statusPath, map[string]string{
		"order":      orderID,
		"merchantId": s.client.cfg.MerchantID,
	})
	if err != nil {
		return nil, err
	}

	result = xmlmap.Decode(raw, statusMapping)
	if result["status"] == nil {
		return nil, pkgerrors.ErrUnknown
	}
	return result, nil
}

// Save stores a card in the protected card vault. See ProtectedCard.Save.
func (s *CreditCard) Save(ctx context.Context, params Params) (Result, error) {
	return s.protected.Save(ctx, params)
}

// Get reads a card from the protected card vault. See ProtectedCard.Get.
func (s *CreditCard) Get(ctx context.Context, justClickKey string) (Result, error) {
	return s.protected.Get(ctx, justClickKey)
}

// JustClickShop buys with a saved card. See ProtectedCard.JustClickShop.
func (s *CreditCard) JustClickShop(ctx context.Context, params Params) (Result, error) {
	return s.protected.JustClickShop(ctx, params)
}
