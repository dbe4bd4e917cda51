package ports

import "context"

// SOAPMessage is a document/literal call against a Braspag web service.
//
// It is serialized as
//
//	<Operation xmlns="Namespace"><Request>Fields...</Request></Operation>
//
// inside the SOAP body.
type SOAPMessage struct {
	Namespace string
	Operation string            // e.g. "SaveCreditCard"
	Request   string            // e.g. "saveCreditCardRequestWS"
	Fields    map[string]string // wire key -> value
	Order     []string          // element order; keys missing here follow sorted
}

// SOAPClient performs a SOAP call and returns the raw response document
type SOAPClient interface {
	Call(ctx context.Context, endpoint string, msg *SOAPMessage) (string, error)
}
