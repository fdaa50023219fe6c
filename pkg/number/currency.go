package number

import "strings"

// FormatCurrency formats value with two grouped decimals behind symbol.
// Negative amounts put the sign before the symbol: -$1,234.50.
func FormatCurrency(value any, symbol string) (string, bool) {
	d, err := Parse(value)
	if err != nil {
		return "", false
	}
	s := FormatDecimal(d, 2, true)
	if rest, neg := strings.CutPrefix(s, "-"); neg {
		return "-" + symbol + rest, true
	}
	return symbol + s, true
}

// FormatPercentage formats value with decimalPlaces decimals and a trailing %.
func FormatPercentage(value any, decimalPlaces int) (string, bool) {
	s, ok := Format(value, decimalPlaces, false)
	if !ok {
		return "", false
	}
	return s + "%", true
}
