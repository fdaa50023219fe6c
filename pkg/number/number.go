// Package number converts between numeric values and fixed-decimal text, with
// optional thousands grouping, and strips such formatting back off again.
//
// All functions are pure and safe for concurrent use.
package number

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ThousandsSeparator is inserted between digit groups by Format.
const ThousandsSeparator = ","

// MaxPlaces bounds the decimal places accepted by Round and Format in either
// direction; larger values are clamped to it.
const MaxPlaces = 340

func clampPlaces(decimalPlaces int) int {
	return max(-MaxPlaces, min(decimalPlaces, MaxPlaces))
}

// RoundDecimal rounds d half away from zero. Negative places round to the left
// of the decimal point. Places are clamped to ±MaxPlaces.
func RoundDecimal(d decimal.Decimal, decimalPlaces int) decimal.Decimal {
	return d.Round(int32(clampPlaces(decimalPlaces)))
}

// Round parses value and rounds it to decimalPlaces, half away from zero.
// ok is false when value is not a number.
func Round(value any, decimalPlaces int) (rounded float64, ok bool) {
	d, err := Parse(value)
	if err != nil {
		return 0, false
	}
	rounded, _ = RoundDecimal(d, decimalPlaces).Float64()
	return rounded, true
}

// Format returns value rounded to decimalPlaces with the fraction zero padded to
// exactly decimalPlaces digits, at most MaxPlaces. When addThousandsSeparator
// is set the integer part is grouped in threes. ok is false when value is not a
// number.
func Format(value any, decimalPlaces int, addThousandsSeparator bool) (formatted string, ok bool) {
	d, err := Parse(value)
	if err != nil {
		return "", false
	}
	return FormatDecimal(d, decimalPlaces, addThousandsSeparator), true
}

// FormatDecimal is Format for an already parsed decimal.
func FormatDecimal(d decimal.Decimal, decimalPlaces int, addThousandsSeparator bool) string {
	decimalPlaces = clampPlaces(decimalPlaces)
	text := RoundDecimal(d, decimalPlaces).String()

	intPart, fracPart := text, ""
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		intPart, fracPart = text[:dot], text[dot+1:]
	}
	if addThousandsSeparator {
		intPart = Group(intPart, ThousandsSeparator)
	}
	if decimalPlaces <= 0 {
		return intPart
	}

	var b strings.Builder
	b.Grow(len(intPart) + 1 + decimalPlaces)
	b.WriteString(intPart)
	b.WriteByte('.')
	b.WriteString(fracPart)
	for n := len(fracPart); n < decimalPlaces; n++ {
		b.WriteByte('0')
	}
	return b.String()
}

// Group inserts sep every three digits of an integer string, counting from the
// units digit. A leading sign stays attached to the first group.
func Group(digits, sep string) string {
	sign := ""
	if digits != "" && (digits[0] == '-' || digits[0] == '+') {
		sign, digits = digits[:1], digits[1:]
	}
	n := len(digits)
	if n <= 3 {
		return sign + digits
	}

	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	var b strings.Builder
	b.Grow(len(sign) + n + (n-1)/3*len(sep))
	b.WriteString(sign)
	b.WriteString(digits[:lead])
	for i := lead; i < n; i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// RemoveFormatNumber drops currency symbols, separators, whitespace and any
// other rune that is not a digit, '.' or '-', then reads what is left as a
// number. An empty or unreadable residue is 0; a residue with trailing junk
// such as "1.2.3" keeps its numeric prefix.
func RemoveFormatNumber(text string) float64 {
	f, _ := RemoveFormatDecimal(text).Float64()
	return f
}

// RemoveFormatDecimal is RemoveFormatNumber without the float conversion.
func RemoveFormatDecimal(text string) decimal.Decimal {
	stripped := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, text)
	if stripped == "" {
		return decimal.Zero
	}
	d, err := Parse(stripped)
	if err != nil {
		return decimal.Zero
	}
	return d
}
