package braspag

import (
	"strings"

	"github.com/google/uuid"
	"github.com/kevin07696/braspag-go/internal/fieldmap"
)

// Params are the caller supplied fields of an operation. Values may be
// strings, integers, floats, decimal.Decimal or time.Time. A nil value
// counts as absent.
type Params map[string]any

// Result is a decoded gateway response. Values are strings, or nil when the
// gateway left the element out or empty, unless an operation documents
// otherwise.
type Result map[string]any

// String returns the value at key in string form and whether it was set
func (r Result) String(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}
	return fieldmap.Stringify(v), true
}

// with returns a copy of p with key set to v. The caller's map is never
// modified.
func (p Params) with(key string, v any) map[string]any {
	out := make(map[string]any, len(p)+1)
	for k, val := range p {
		out[k] = val
	}
	out[key] = v
	return out
}

// NewRequestID returns a correlation id in the braced upper case GUID form
// the protected card service expects
func NewRequestID() string {
	return "{" + strings.ToUpper(uuid.NewString()) + "}"
}
