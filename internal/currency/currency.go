// Package currency converts between decimal values and the pt-BR display
// format used everywhere money is shown: thousands separated by ".",
// decimals by ",", always two fraction digits.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format renders a decimal in the display format, e.g. 1234.56 -> "1.234,56".
func Format(value decimal.Decimal) string {
	f, _ := value.Float64()
	return printer.Sprint(number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Parse converts a display string back into a decimal. Thousands separators
// are stripped and the decimal comma becomes a period. Unparseable input
// yields zero, never an error.
func Parse(value string) decimal.Decimal {
	clean := strings.ReplaceAll(value, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	parsed, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return parsed
}

// Sanitize applies the live input policy for currency fields: only digits
// and a single decimal separator survive, at most two fraction digits are
// kept, a leading separator gets a "0" prefix and redundant leading zeros
// are stripped.
func Sanitize(raw string) string {
	// Keep only digits, commas and periods
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	value := b.String()

	if strings.ContainsAny(value, ",.") {
		// The first separator of either kind becomes the decimal comma,
		// every later one is discarded
		value = strings.Replace(value, ".", ",", 1)
		if i := strings.Index(value, ","); i != -1 {
			value = value[:i+1] + strings.NewReplacer(",", "", ".", "").Replace(value[i+1:])
		}

		// Truncate to two fraction digits
		parts := strings.SplitN(value, ",", 2)
		if len(parts) == 2 && len(parts[1]) > 2 {
			value = parts[0] + "," + parts[1][:2]
		}
	}

	// Strip redundant leading zeros, but keep the zero in "0,x"
	for strings.HasPrefix(value, "0") && len(value) > 1 && value[1] != ',' {
		value = value[1:]
	}

	if strings.HasPrefix(value, ",") {
		value = "0" + value
	}

	return value
}

// FocusValue returns what a currency field shows when it receives focus:
// a zero value clears to an empty field so the user types fresh digits,
// anything else collapses to the plain two-decimal form without thousands
// separators.
func FocusValue(display string) string {
	if display == "" || display == "0" || display == Format(decimal.Zero) {
		return ""
	}

	return strings.Replace(Parse(display).StringFixed(2), ".", ",", 1)
}

// BlurValue re-normalizes a currency field to the canonical display form
// when it loses focus, regardless of what was typed.
func BlurValue(display string) string {
	return Format(Parse(display))
}
