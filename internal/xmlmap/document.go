package xmlmap

import (
	"encoding/xml"
	"strings"

	"golang.org/x/net/html/charset"
)

// Document is a parsed XML response indexed by local element name.
// Namespace prefixes and default namespaces play no part in lookups.
type Document struct {
	texts map[string]string
}

type openElement struct {
	name string
	text *strings.Builder // nil when an earlier element already owns this name
}

// Parse indexes doc once, recording the text content of the first element
// (in document order) for every local name. Text content is the concatenated
// character data of the element and all of its descendants.
//
// Parse never fails: on malformed input it keeps whatever was indexed before
// the decoder gave up.
func Parse(doc string) *Document {
	d := &Document{texts: make(map[string]string)}
	seen := make(map[string]bool)

	dec := xml.NewDecoder(strings.NewReader(strings.TrimSpace(doc)))
	dec.Strict = false
	// non UTF-8 declarations (iso-8859-1, windows-1252) are transcoded
	dec.CharsetReader = charset.NewReaderLabel

	var stack []openElement
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := openElement{name: t.Name.Local}
			if !seen[el.name] {
				seen[el.name] = true
				el.text = &strings.Builder{}
			}
			stack = append(stack, el)
		case xml.CharData:
			for _, el := range stack {
				if el.text != nil {
					el.text.Write(t)
				}
			}
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			el := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if el.text != nil {
				d.texts[el.name] = el.text.String()
			}
		}
	}

	// Elements left open by a truncated document still count
	for _, el := range stack {
		if el.text != nil {
			d.texts[el.name] = el.text.String()
		}
	}

	return d
}

// Text returns the content of the first element with the given local name.
// ok is false when the element is absent.
func (d *Document) Text(name string) (string, bool) {
	text, ok := d.texts[name]
	return text, ok
}

// Has reports whether an element with the given local name exists
func (d *Document) Has(name string) bool {
	_, ok := d.texts[name]
	return ok
}
