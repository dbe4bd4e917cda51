package fieldmap

// AuthorizeTable is the credit card authorization body. paymentMethod is
// encoded by the caller because it depends on the environment.
var AuthorizeTable = Table{
	{Key: "merchant_id", WireKey: "merchantId"},
	{Key: "order", WireKey: "order"},
	{Key: "order_id", WireKey: "orderId"},
	{Key: "customer_name", WireKey: "customerName"},
	{Key: "amount", WireKey: "amount", Encode: Amount},
	{Key: "payment_method", WireKey: "paymentMethod", Encode: Code(CardMethods)},
	{Key: "holder", WireKey: "holder"},
	{Key: "card_number", WireKey: "cardNumber"},
	{Key: "expiration", WireKey: "expiration"},
	{Key: "security_code", WireKey: "securityCode"},
	{Key: "number_payments", WireKey: "numberPayments"},
	{Key: "type", WireKey: "typePayment"},
}

// BoletoTable is the boleto creation body
var BoletoTable = Table{
	{Key: "merchant_id", WireKey: "merchantId"},
	{Key: "order_id", WireKey: "orderId"},
	{Key: "customer_name", WireKey: "customerName"},
	{Key: "customer_id", WireKey: "customerIdNumber"},
	{Key: "customer_identity", WireKey: "customerIdentity"},
	{Key: "customer_identity_type", WireKey: "customerIdentityType"},
	{Key: "amount", WireKey: "amount", Encode: Amount},
	{Key: "payment_method", WireKey: "paymentMethod", Encode: Code(BoletoMethods)},
	{Key: "number", WireKey: "boletoNumber"},
	{Key: "instructions", WireKey: "instructions"},
	{Key: "expiration_date", WireKey: "expirationDate"},
	{Key: "emails", WireKey: "emails"},
}

// ProtectedCardTable is the saveCreditCardRequestWS message
var ProtectedCardTable = Table{
	{Key: "request_id", WireKey: "RequestId"},
	{Key: "merchant_id", WireKey: "MerchantKey"},
	{Key: "customer_name", WireKey: "CustomerName"},
	{Key: "holder", WireKey: "CardHolder"},
	{Key: "card_number", WireKey: "CardNumber"},
	{Key: "expiration", WireKey: "CardExpiration"},
}

// JustClickTable is the justClickShopRequestWS message
var JustClickTable = Table{
	{Key: "request_id", WireKey: "RequestId"},
	{Key: "merchant_id", WireKey: "MerchantKey"},
	{Key: "customer_name", WireKey: "CustomerName"},
	{Key: "order_id", WireKey: "OrderId"},
	{Key: "amount", WireKey: "Amount", Encode: AmountCents},
	{Key: "payment_method", WireKey: "PaymentMethod", Encode: Code(CardMethods)},
	{Key: "number_installments", WireKey: "NumberInstallments"},
	{Key: "payment_type", WireKey: "PaymentType"},
	{Key: "just_click_key", WireKey: "JustClickKey"},
	{Key: "security_code", WireKey: "SecurityCode"},
}

// WithEncoder returns a copy of t with the encoder for key replaced
func (t Table) WithEncoder(key string, enc Encoder) Table {
	out := make(Table, len(t))
	copy(out, t)
	for i := range out {
		if out[i].Key == key {
			out[i].Encode = enc
		}
	}
	return out
}
