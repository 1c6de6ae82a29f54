package service

import (
	"strconv"
	"strings"
	"time"
)

// Formatter renders amounts and dates for receipts. It is built from the
// persisted DisplaySettings, falling back to 2 decimal places and
// DD/MM/YYYY when nothing is configured.
type Formatter struct {
	DecimalPlaces int
	DateFormat    string
}

// DefaultFormatter returns the formatting defaults used when no display
// settings exist.
func DefaultFormatter() Formatter {
	return Formatter{DecimalPlaces: 2, DateFormat: "DD/MM/YYYY"}
}

// Amount renders a smallest-unit integer with thousands separators and the
// configured number of decimal places, e.g. 45000 -> "45,000.00".
func (f Formatter) Amount(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	digits := strconv.FormatInt(v, 10)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	out := b.String()
	if f.DecimalPlaces > 0 {
		out += "." + strings.Repeat("0", f.DecimalPlaces)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// Quantity renders a possibly-fractional quantity without trailing zeros.
func (f Formatter) Quantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// Date renders t using the configured date format (DD/MM/YYYY style tokens).
func (f Formatter) Date(t time.Time) string {
	layout := strings.NewReplacer(
		"DD", "02",
		"MM", "01",
		"YYYY", "2006",
		"YY", "06",
	).Replace(f.DateFormat)
	return t.Format(layout)
}

// Clock renders the time-of-day portion.
func (f Formatter) Clock(t time.Time) string {
	return t.Format("15:04")
}
