package number

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol prefixes Money.Format output when no symbol is given.
const DefaultCurrencySymbol = "$"

// Money is a decimal amount displayed with two grouped decimals.
type Money struct {
	decimal.Decimal
}

// NewMoney converts a float64 using its shortest decimal representation.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal wraps d without rounding it.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString parses a plain numeric string such as "1234.56".
func NewMoneyFromString(value string) (Money, error) {
	d, err := Parse(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// NewMoneyFromFormatted reads display text such as "$1,234.56" the way
// RemoveFormatNumber does; it never fails.
func NewMoneyFromFormatted(text string) Money {
	return Money{RemoveFormatDecimal(text)}
}

// Round rounds to cents, half away from zero.
func (m Money) Round() Money {
	return Money{RoundDecimal(m.Decimal, 2)}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul scales m by factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal reports whether m and other are the same amount, ignoring trailing zeros.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Sum adds up amounts; an empty list sums to zero.
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Zero returns an amount of zero.
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two decimals and thousands separators.
func (m Money) String() string {
	return FormatDecimal(m.Decimal, 2, true)
}

// Format prefixes the amount with symbol, or DefaultCurrencySymbol when empty.
func (m Money) Format(symbol string) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	s, _ := FormatCurrency(m.Decimal, symbol)
	return s
}
