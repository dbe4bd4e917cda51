package xmlmap

import "strings"

type extractorKind int

const (
	kindDefault extractorKind = iota
	kindTag
	kindTransform
)

// TransformFunc derives a value from the whole parsed document
type TransformFunc func(doc *Document) any

// Extractor tells Decode how to fill one output key
type Extractor struct {
	kind extractorKind
	tag  string
	fn   TransformFunc
}

// ByTag reads the first element with the given local name
func ByTag(name string) Extractor {
	return Extractor{kind: kindTag, tag: name}
}

// Default reads the element named after the output key in lowerCamelCase
func Default() Extractor {
	return Extractor{kind: kindDefault}
}

// Transform computes the value with fn
func Transform(fn TransformFunc) Extractor {
	return Extractor{kind: kindTransform, fn: fn}
}

// Mapping maps output keys to extractors
type Mapping map[string]Extractor

// Decode extracts a flat result from doc. Absent and empty elements both
// decode to nil. Decode never fails; callers inspect the result for
// sentinel values.
func Decode(doc string, m Mapping) map[string]any {
	return DecodeDocument(Parse(doc), m)
}

// DecodeDocument is Decode over an already parsed document
func DecodeDocument(d *Document, m Mapping) map[string]any {
	result := make(map[string]any, len(m))
	for key, ex := range m {
		switch ex.kind {
		case kindTransform:
			result[key] = ex.fn(d)
		case kindTag:
			result[key] = textOrNil(d, ex.tag)
		default:
			result[key] = textOrNil(d, CamelCase(key))
		}
	}
	return result
}

func textOrNil(d *Document, tag string) any {
	text, ok := d.Text(tag)
	if !ok || text == "" {
		return nil
	}
	return text
}

// CamelCase converts a snake_case key into the gateway's lowerCamelCase
// element naming: return_code becomes returnCode.
func CamelCase(key string) string {
	parts := strings.Split(key, "_")
	var b strings.Builder
	b.Grow(len(key))
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
