package number

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrParse is the sentinel wrapped by every ParseError.
var ErrParse = errors.New("not a number")

// ParseError reports a value that could not be read as a number.
type ParseError struct {
	Value any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", ErrParse, fmt.Sprint(e.Value))
}

func (e *ParseError) Unwrap() error { return ErrParse }

// Parse converts a Go number or numeric text into a decimal.
//
// Text is read like a float parser reads it: leading whitespace is skipped and the
// longest numeric prefix is used, so "12px" is 12 and "abc" is an error.
// NaN, infinities and values beyond the float64 range are rejected; values
// below the smallest float64 read as zero.
func Parse(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return bounded(v, value)
	case Money:
		return bounded(v.Decimal, value)
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, &ParseError{Value: value}
		}
		return bounded(*v, value)
	case float64:
		return fromFloat(v, value)
	case float32:
		return fromFloat(float64(v), value)
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int8:
		return decimal.NewFromInt(int64(v)), nil
	case int16:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint:
		return fromUint(uint64(v)), nil
	case uint8:
		return decimal.NewFromInt(int64(v)), nil
	case uint16:
		return decimal.NewFromInt(int64(v)), nil
	case uint32:
		return decimal.NewFromInt(int64(v)), nil
	case uint64:
		return fromUint(v), nil
	case string:
		return parseText(v, value)
	case json.Number:
		return parseText(string(v), value)
	case fmt.Stringer:
		return parseText(v.String(), value)
	}
	return decimal.Zero, &ParseError{Value: value}
}

func fromFloat(f float64, orig any) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, &ParseError{Value: orig}
	}
	return decimal.NewFromFloat(f), nil
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func parseText(s string, orig any) (decimal.Decimal, error) {
	lit, ok := numericPrefix(s)
	if !ok {
		return decimal.Zero, &ParseError{Value: orig}
	}
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", &ParseError{Value: orig}, err)
	}
	return bounded(d, orig)
}

// Decimal exponents, as in d = c × 10^exp with c read as c.ccc, outside which
// a value overflows or underflows float64.
const (
	maxExponent = 308
	minExponent = -400
)

// bounded applies float64 range rules to d: values too large for a float64 are
// a ParseError, like infinities, and values too small to be told apart from
// zero become zero. This keeps rounding and formatting work proportional to
// the length of the input rather than to the size of its exponent.
func bounded(d decimal.Decimal, orig any) (decimal.Decimal, error) {
	if d.IsZero() {
		return decimal.Zero, nil
	}
	digits := len(new(big.Int).Abs(d.Coefficient()).String())
	adjusted := int64(d.Exponent()) + int64(digits) - 1
	switch {
	case adjusted > maxExponent:
		return decimal.Zero, &ParseError{Value: orig}
	case adjusted < minExponent:
		return decimal.Zero, nil
	case adjusted == maxExponent:
		if f, _ := d.Float64(); math.IsInf(f, 0) {
			return decimal.Zero, &ParseError{Value: orig}
		}
	}
	return d, nil
}

// numericPrefix returns the longest leading numeric literal of s in a canonical
// form: optional "-", at least one integer digit, optional fraction, optional
// exponent.
func numericPrefix(s string) (string, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f\u00a0\ufeff")
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := s[intStart:i]

	var fracDigits string
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracDigits = s[i+1 : j]
		if intDigits != "" || fracDigits != "" {
			i = j
		}
	}
	if intDigits == "" && fracDigits == "" {
		return "", false
	}

	var exp string
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		sign := ""
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			if s[j] == '-' {
				sign = "-"
			}
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			exp = "e" + sign + s[j:k]
		}
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if intDigits == "" {
		b.WriteByte('0')
	} else {
		b.WriteString(intDigits)
	}
	if fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(fracDigits)
	}
	b.WriteString(exp)
	return b.String(), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
