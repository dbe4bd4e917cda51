package validation

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/kevin07696/braspag-go/internal/fieldmap"
	pkgerrors "github.com/kevin07696/braspag-go/pkg/errors"
	"github.com/kevin07696/braspag-go/pkg/timeutil"
)

var (
	validate = validator.New()

	dayMonthYearPattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{2})$`)
	monthYearPattern    = regexp.MustCompile(`^(\d{2})/(\d{2}|\d{4})$`)
)

func init() {
	validate.RegisterValidation("day_month_year", func(fl validator.FieldLevel) bool {
		return validDayMonthYear(fl.Field().String())
	})
	validate.RegisterValidation("month_year", func(fl validator.FieldLevel) bool {
		return validMonthYear(fl.Field().String())
	})
}

// Rule checks one aspect of a parameter map
type Rule func(p map[string]any) error

// Set is an ordered list of rules
type Set []Rule

// Check runs the rules in order and returns the first failure
func (s Set) Check(p map[string]any) error {
	for _, rule := range s {
		if err := rule(p); err != nil {
			return err
		}
	}
	return nil
}

// Required fails with ErrIncompleteParams naming the first absent key
func Required(keys ...string) Rule {
	return func(p map[string]any) error {
		for _, k := range keys {
			if _, ok := fieldmap.Lookup(p, k); !ok {
				return pkgerrors.ErrIncompleteParams.WithField(k)
			}
		}
		return nil
	}
}

// Length bounds the rune length of key's string form. Absent keys pass.
func Length(key string, min, max int, err *pkgerrors.Error) Rule {
	tag := fmt.Sprintf("min=%d,max=%d", min, max)
	return func(p map[string]any) error {
		v, ok := fieldmap.Lookup(p, key)
		if !ok {
			return nil
		}
		if validate.Var(fieldmap.Stringify(v), tag) != nil {
			return err.WithField(key)
		}
		return nil
	}
}

// IntRange bounds key's integer value. Values that do not convert count
// as 0. Absent keys pass.
func IntRange(key string, min, max int, err *pkgerrors.Error) Rule {
	tag := fmt.Sprintf("min=%d,max=%d", min, max)
	return func(p map[string]any) error {
		v, ok := fieldmap.Lookup(p, key)
		if !ok {
			return nil
		}
		if validate.Var(fieldmap.ToInt(v), tag) != nil {
			return err.WithField(key)
		}
		return nil
	}
}

// OrderID accepts a non-empty string or any integer
func OrderID(key string) Rule {
	return func(p map[string]any) error {
		v, _ := fieldmap.Lookup(p, key)
		if !ValidOrderID(v) {
			return pkgerrors.ErrInvalidOrderID.WithField(key)
		}
		return nil
	}
}

// ValidOrderID reports whether v can identify an order
func ValidOrderID(v any) bool {
	switch t := v.(type) {
	case string:
		return t != ""
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// OneOf requires key to name an entry of table. Absent keys pass.
func OneOf(key string, table fieldmap.CodeTable, err *pkgerrors.Error) Rule {
	return func(p map[string]any) error {
		v, ok := fieldmap.Lookup(p, key)
		if ok && !table.Has(v) {
			return err.WithField(key)
		}
		return nil
	}
}

// DayMonthYear requires a real DD/MM/YY date. Absent keys pass.
func DayMonthYear(key string, err *pkgerrors.Error) Rule {
	return pattern(key, "day_month_year", err)
}

// MonthYear requires MM/YY or MM/YYYY with a real month. Absent keys pass.
func MonthYear(key string, err *pkgerrors.Error) Rule {
	return pattern(key, "month_year", err)
}

func pattern(key, tag string, err *pkgerrors.Error) Rule {
	return func(p map[string]any) error {
		v, ok := fieldmap.Lookup(p, key)
		if !ok {
			return nil
		}
		if validate.Var(fieldmap.Stringify(v), tag) != nil {
			return err.WithField(key)
		}
		return nil
	}
}

// JustClickKey reports whether key has the 36 characters of a bare GUID
func JustClickKey(key string) bool {
	return len(key) == 36
}

func validDayMonthYear(s string) bool {
	m := dayMonthYearPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return timeutil.ValidDate(timeutil.NormalizeYear(year, 2), month, day)
}

func validMonthYear(s string) bool {
	m := monthYearPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	return timeutil.ValidDate(timeutil.NormalizeYear(year, len(m[2])), month, 1)
}
