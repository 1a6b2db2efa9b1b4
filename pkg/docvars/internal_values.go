package docvars

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Internal (system-computed) variable keys.
const (
	KeyDateNow     = "date_now"
	KeyDateTimeNow = "date_time_now"
	KeyTimeNow     = "time_now"
	KeyYearNow     = "year_now"
	KeyMonthNow    = "month_now"
	KeyDayNow      = "day_now"
)

// internalKeys is the fixed set of known internal keys, used when a variable
// is absent from the catalog.
var internalKeys = map[string]struct{}{
	KeyDateNow:     {},
	KeyDateTimeNow: {},
	KeyTimeNow:     {},
	KeyYearNow:     {},
	KeyMonthNow:    {},
	KeyDayNow:      {},
}

// IsInternalKey reports whether the key belongs to the built-in internal set.
func IsInternalKey(key string) bool {
	_, ok := internalKeys[key]
	return ok
}

// CalculatorFunc computes the display string for one internal variable.
type CalculatorFunc func(now time.Time, format string) string

// Calculators is the registry of internal-value calculators. It is explicit
// configuration rather than package state so tests can pin the clock and
// extensions can register workspace-specific keys.
type Calculators struct {
	now   func() time.Time
	table map[string]CalculatorFunc
}

// NewCalculators builds the default calculator set on the given clock. A nil
// clock falls back to time.Now.
func NewCalculators(now func() time.Time) *Calculators {
	if now == nil {
		now = time.Now
	}
	c := &Calculators{now: now, table: make(map[string]CalculatorFunc)}

	c.Register(KeyDateNow, func(t time.Time, format string) string {
		return formatDate(t, format, "DD/MM/YYYY")
	})
	c.Register(KeyDateTimeNow, func(t time.Time, format string) string {
		return formatDate(t, format, "DD/MM/YYYY HH:mm")
	})
	c.Register(KeyTimeNow, func(t time.Time, format string) string {
		return formatDate(t, format, "HH:mm")
	})
	c.Register(KeyYearNow, func(t time.Time, _ string) string {
		return strconv.Itoa(t.Year())
	})
	c.Register(KeyMonthNow, formatMonth)
	c.Register(KeyDayNow, func(t time.Time, _ string) string {
		return strconv.Itoa(t.Day())
	})

	return c
}

// Register adds or replaces a calculator for a key.
func (c *Calculators) Register(key string, fn CalculatorFunc) {
	c.table[key] = fn
}

// Calculate computes the value for an internal key. Unknown keys yield the
// empty string rather than an error.
func (c *Calculators) Calculate(key, format string) string {
	fn, ok := c.table[key]
	if !ok {
		return ""
	}
	return fn(c.now(), format)
}

// Has reports whether a calculator is registered for the key.
func (c *Calculators) Has(key string) bool {
	_, ok := c.table[key]
	return ok
}

// formatPatterns maps the editor's format mini-language onto Go layouts.
var formatPatterns = map[string]string{
	"DD/MM/YYYY":          "02/01/2006",
	"MM/DD/YYYY":          "01/02/2006",
	"YYYY-MM-DD":          "2006-01-02",
	"DD/MM/YYYY HH:mm":    "02/01/2006 15:04",
	"YYYY-MM-DD HH:mm:ss": "2006-01-02 15:04:05",
	"HH:mm":               "15:04",
	"HH:mm:ss":            "15:04:05",
	"hh:mm a":             "03:04 PM",
}

func formatDate(t time.Time, format, fallback string) string {
	if format == "" {
		format = fallback
	}
	if format == "long" {
		// Localized long form, e.g. "Monday, 2 January 2006".
		return fmt.Sprintf("%s, %d %s %d", t.Weekday(), t.Day(), t.Month(), t.Year())
	}
	layout, ok := formatPatterns[format]
	if !ok {
		layout = formatPatterns[fallback]
	}
	return t.Format(layout)
}

// Month format options.
const (
	MonthFormatNumber    = "number"
	MonthFormatLongName  = "long_name"
	MonthFormatShortName = "short_name"
)

func formatMonth(t time.Time, format string) string {
	switch format {
	case MonthFormatLongName:
		return t.Month().String()
	case MonthFormatShortName:
		return t.Month().String()[:3]
	default:
		return strconv.Itoa(int(t.Month()))
	}
}

func formatOf(v ExtractedVariable) string {
	if v.Format == nil {
		return ""
	}
	return strings.TrimSpace(*v.Format)
}
