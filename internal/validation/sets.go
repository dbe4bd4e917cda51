package validation

import (
	"github.com/kevin07696/braspag-go/internal/fieldmap"
	pkgerrors "github.com/kevin07696/braspag-go/pkg/errors"
)

func basePayment(methods fieldmap.CodeTable) Set {
	return Set{
		Required("order_id", "amount", "payment_method"),
		OrderID("order_id"),
		Length("customer_name", 1, 255, pkgerrors.ErrInvalidCustomerName),
		Length("customer_id", 11, 18, pkgerrors.ErrInvalidCustomerID),
		OneOf("payment_method", methods, pkgerrors.ErrInvalidPaymentMethod),
	}
}

// Authorize validates a credit card authorization
var Authorize = append(basePayment(fieldmap.CardMethods),
	Required("customer_name", "holder", "card_number", "expiration", "security_code", "number_payments", "type"),
	Length("holder", 1, 100, pkgerrors.ErrInvalidHolder),
	MonthYear("expiration", pkgerrors.ErrInvalidExpirationDate),
	Length("security_code", 1, 4, pkgerrors.ErrInvalidSecurityCode),
	IntRange("number_payments", 1, 99, pkgerrors.ErrInvalidNumberPayments),
)

// Boleto validates a boleto creation
var Boleto = append(basePayment(fieldmap.BoletoMethods),
	Length("number", 1, 255, pkgerrors.ErrInvalidNumber),
	Length("instructions", 1, 512, pkgerrors.ErrInvalidInstructions),
	DayMonthYear("expiration_date", pkgerrors.ErrInvalidExpirationDate),
)

// SaveCard validates a protected card save
var SaveCard = Set{
	Required("request_id", "customer_name", "holder", "card_number", "expiration"),
	Length("holder", 1, 100, pkgerrors.ErrInvalidHolder),
	MonthYear("expiration", pkgerrors.ErrInvalidExpirationDate),
}

// JustClickShop validates a purchase on a saved card
var JustClickShop = Set{
	Required("request_id", "customer_name", "order_id", "amount", "payment_method",
		"number_installments", "payment_type", "just_click_key", "security_code"),
	Length("security_code", 1, 4, pkgerrors.ErrInvalidSecurityCode),
	IntRange("number_installments", 1, 99, pkgerrors.ErrInvalidNumberInstallments),
	OrderID("order_id"),
}
