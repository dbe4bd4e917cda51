package security

import (
	"regexp"
	"strings"
)

const cardMask = "************"

var (
	hexDigit         = regexp.MustCompile(`[0-9A-Fa-f]`)
	justClickElement = regexp.MustCompile(`(<(?:[\w.-]+:)?JustClickKey>)(.*?)(</(?:[\w.-]+:)?JustClickKey>)`)
	cardElement      = regexp.MustCompile(`(?s)(<(?:[\w.-]+:)?(?:CardNumber|NumeroCartao)>)(.*?)(</(?:[\w.-]+:)?(?:CardNumber|NumeroCartao)>)`)
)

// MaskCardNumber keeps only the last four digits of a card number.
// Numbers shorter than four characters are hidden entirely.
func MaskCardNumber(number string) string {
	if len(number) < 4 {
		return cardMask
	}
	return cardMask + number[len(number)-4:]
}

// RedactJustClickKey replaces every hex digit of a just-click key with X,
// keeping braces and dashes so the key shape stays readable in logs.
func RedactJustClickKey(key string) string {
	return hexDigit.ReplaceAllString(key, "X")
}

// RedactJustClickKeyXML redacts the content of every JustClickKey element in an XML document
func RedactJustClickKeyXML(doc string) string {
	return justClickElement.ReplaceAllStringFunc(doc, func(el string) string {
		m := justClickElement.FindStringSubmatch(el)
		return m[1] + RedactJustClickKey(m[2]) + m[3]
	})
}

// MaskCardNumberXML keeps only the last four digits of every CardNumber and
// NumeroCartao element in an XML document. Empty elements stay empty.
func MaskCardNumberXML(doc string) string {
	return cardElement.ReplaceAllStringFunc(doc, func(el string) string {
		m := cardElement.FindStringSubmatch(el)
		number := strings.TrimSpace(m[2])
		if number == "" {
			return el
		}
		return m[1] + MaskCardNumber(number) + m[3]
	})
}

// RedactResponseXML applies every response redaction: card numbers are
// masked and just-click keys redacted
func RedactResponseXML(doc string) string {
	return MaskCardNumberXML(RedactJustClickKeyXML(doc))
}

// MaskFormData returns a copy of an outbound form body safe for logging.
// cardNumber keeps its last four digits and securityCode is always "***".
func MaskFormData(data map[string]string) map[string]string {
	masked := make(map[string]string, len(data))
	for k, v := range data {
		masked[k] = v
	}
	if v, ok := masked["cardNumber"]; ok {
		masked["cardNumber"] = MaskCardNumber(v)
	}
	if _, ok := masked["securityCode"]; ok {
		masked["securityCode"] = "***"
	}
	return masked
}

// MaskSOAPFields returns a copy of a protected-card request safe for logging.
// CardNumber keeps its last four digits, SecurityCode is starred character for
// character and JustClickKey has its hex digits replaced.
func MaskSOAPFields(fields map[string]string) map[string]string {
	masked := make(map[string]string, len(fields))
	for k, v := range fields {
		masked[k] = v
	}
	if v, ok := masked["CardNumber"]; ok {
		masked["CardNumber"] = MaskCardNumber(v)
	}
	if v, ok := masked["SecurityCode"]; ok {
		masked["SecurityCode"] = strings.Repeat("*", len([]rune(v)))
	}
	if v, ok := masked["JustClickKey"]; ok {
		masked["JustClickKey"] = RedactJustClickKey(v)
	}
	return masked
}
