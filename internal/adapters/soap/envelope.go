package soap

import (
	"encoding/xml"
	"sort"

	"github.com/kevin07696/braspag-go/pkg/encoding"
	"github.com/kevin07696/braspag-go/pkg/ports"
)

const envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

type soapEnvelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	SoapNS  string   `xml:"xmlns:soap,attr"`
	Body    soapBody `xml:"soap:Body"`
}

type soapBody struct {
	Operation soapOperation
}

type soapOperation struct {
	XMLName xml.Name
	NS      string `xml:"xmlns,attr"`
	Request soapRequest
}

// soapRequest writes its fields as child elements in wire order
type soapRequest struct {
	XMLName xml.Name
	Fields  map[string]string
	Order   []string
}

func (r soapRequest) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: r.XMLName}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, k := range fieldOrder(r.Fields, r.Order) {
		el := xml.StartElement{Name: xml.Name{Local: k}}
		if err := e.EncodeElement(r.Fields[k], el); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func fieldOrder(fields map[string]string, order []string) []string {
	keys := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(order))
	for _, k := range order {
		if _, ok := fields[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}

	var rest []string
	for k := range fields {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// buildEnvelope serializes msg as a SOAP 1.1 document/literal request
func buildEnvelope(msg *ports.SOAPMessage) ([]byte, error) {
	env := soapEnvelope{
		SoapNS: envelopeNS,
		Body: soapBody{
			Operation: soapOperation{
				XMLName: xml.Name{Local: msg.Operation},
				NS:      msg.Namespace,
				Request: soapRequest{
					XMLName: xml.Name{Local: msg.Request},
					Fields:  msg.Fields,
					Order:   msg.Order,
				},
			},
		},
	}

	return encoding.EncodeXML(env)
}
