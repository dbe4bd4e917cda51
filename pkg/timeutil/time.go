package timeutil

import (
	"errors"
	"strings"
	"time"
)

// Braspag wire layouts
const (
	BoletoDateLayout = "02/01/06" // DD/MM/YY
)

// gatewayDateLayouts are tried in order when reading dates back from Braspag
var gatewayDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
	BoletoDateLayout,
	"1/2/2006 3:04:05 PM",
}

// ErrInvalidDate is returned when components do not form a calendar date
var ErrInvalidDate = errors.New("invalid calendar date")

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatBoletoDate formats t as DD/MM/YY
func FormatBoletoDate(t time.Time) string {
	return t.Format(BoletoDateLayout)
}

// ParseGatewayDate parses a date returned by Braspag in any of its known layouts
func ParseGatewayDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range gatewayDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ValidDate reports whether year/month/day form a real calendar date.
// time.Date normalizes overflow (Feb 30 becomes Mar 2), so a round trip
// detects out-of-range components.
func ValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// NormalizeYear expands a two-digit year into the 2000s
func NormalizeYear(year int, digits int) int {
	if digits == 2 {
		return 2000 + year
	}
	return year
}
