package braspag

import (
	"context"
	"strconv"
	"strings"

	"github.com/kevin07696/braspag-go/internal/fieldmap"
	"github.com/kevin07696/braspag-go/internal/validation"
	"github.com/kevin07696/braspag-go/internal/xmlmap"
	pkgerrors "github.com/kevin07696/braspag-go/pkg/errors"
	"github.com/kevin07696/braspag-go/pkg/ports"
)

// ProtectedCardNamespace is the target namespace of the protected card service
const ProtectedCardNamespace = "http://www.cartaoprotegido.com.br/WebService/"

var homologationJustClickTable = fieldmap.JustClickTable.WithEncoder("payment_method",
	fieldmap.Constant(fieldmap.CardMethods[fieldmap.HomologationMethod]))

var saveCardMapping = xmlmap.Mapping{
	"correlation_id": xmlmap.ByTag("CorrelationId"),
	"just_click_key": xmlmap.ByTag("JustClickKey"),
	"success":        xmlmap.Transform(boolTag("Success")),
}

var getCardMapping = xmlmap.Mapping{
	"holder":             xmlmap.ByTag("CardHolder"),
	"card_number":        xmlmap.ByTag("CardNumber"),
	"expiration":         xmlmap.ByTag("CardExpiration"),
	"masked_card_number": xmlmap.ByTag("MaskedCardNumber"),
}

var justClickMapping = xmlmap.Mapping{
	"correlation_id":          xmlmap.ByTag("CorrelationId"),
	"success":                 xmlmap.Transform(boolTag("Success")),
	"authorization_code":      xmlmap.ByTag("AuthorizationCode"),
	"amount":                  xmlmap.ByTag("Amount"),
	"braspag_transaction_id":  xmlmap.ByTag("BraspagTransactionId"),
	"acquirer_transaction_id": xmlmap.ByTag("AcquirerTransactionId"),
	"return_code":             xmlmap.ByTag("ReturnCode"),
	"return_message":          xmlmap.ByTag("ReturnMessage"),
	"status":                  xmlmap.ByTag("Status"),
	"error_code":              xmlmap.ByTag("ErrorCode"),
	"error_message":           xmlmap.ByTag("ErrorMessage"),
}

// boolTag reads tag as a boolean, or nil when absent or not a boolean
func boolTag(tag string) xmlmap.TransformFunc {
	return func(doc *xmlmap.Document) any {
		text, ok := doc.Text(tag)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return nil
		}
		return b
	}
}

// ProtectedCard groups the protected card (card vault) operations
type ProtectedCard struct {
	client *Client
}

// Save stores a card and returns its just-click key.
//
// Required params: request_id, customer_name, holder, card_number and
// expiration (MM/YY or MM/YYYY). The result has correlation_id,
// just_click_key and success (a bool).
func (s *ProtectedCard) Save(ctx context.Context, params Params) (result Result, err error) {
	defer s.client.track("save_card")(&err)

	p := params.with("merchant_id", s.client.cfg.MerchantID)
	if err := validation.SaveCard.Check(p); err != nil {
		return nil, err
	}

	fields, err := fieldmap.ProtectedCardTable.Encode(p)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.call(ctx, &ports.SOAPMessage{
		Namespace: ProtectedCardNamespace,
		Operation: "SaveCreditCard",
		Request:   "saveCreditCardRequestWS",
		Fields:    fields,
		Order:     fieldmap.ProtectedCardTable.WireKeys(),
	})
	if err != nil {
		return nil, err
	}
	return xmlmap.Decode(raw, saveCardMapping), nil
}

// Get reads the card stored under justClickKey. ErrUnknown means the
// gateway returned no card number.
func (s *ProtectedCard) Get(ctx context.Context, justClickKey string) (result Result, err error) {
	defer s.client.track("get_card")(&err)

	if !validation.JustClickKey(justClickKey) {
		return nil, pkgerrors.ErrInvalidJustClickKey.WithField("just_click_key")
	}

	raw, err := s.client.call(ctx, &ports.SOAPMessage{
		Namespace: ProtectedCardNamespace,
		Operation: "GetCreditCard",
		Request:   "getCreditCardRequestWS",
		Fields: map[string]string{
			"MerchantKey":  s.client.cfg.MerchantID,
			"JustClickKey": justClickKey,
		},
		Order: []string{"MerchantKey", "JustClickKey"},
	})
	if err != nil {
		return nil, err
	}

	result = xmlmap.Decode(raw, getCardMapping)
	if result["card_number"] == nil {
		return nil, pkgerrors.ErrUnknown
	}
	return result, nil
}

// JustClickShop buys with a saved card.
//
// Required params: request_id, customer_name, order_id, amount,
// payment_method, number_installments, payment_type, just_click_key and
// security_code. The amount goes on the wire in cents. In homologation the
// payment method is replaced by the test acquirer.
func (s *ProtectedCard) JustClickShop(ctx context.Context, params Params) (result Result, err error) {
	defer s.client.track("just_click_shop")(&err)

	p := params.with("merchant_id", s.client.cfg.MerchantID)
	if err := validation.JustClickShop.Check(p); err != nil {
		return nil, err
	}

	table := fieldmap.JustClickTable
	if !s.client.cfg.IsProduction() {
		table = homologationJustClickTable
	}
	fields, err := table.Encode(p)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.call(ctx, &ports.SOAPMessage{
		Namespace: ProtectedCardNamespace,
		Operation: "JustClickShop",
		Request:   "justClickShopRequestWS",
		Fields:    fields,
		Order:     table.WireKeys(),
	})
	if err != nil {
		return nil, err
	}
	return xmlmap.Decode(raw, justClickMapping), nil
}
