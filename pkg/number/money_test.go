package number

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestMoneyConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}

	if got := NewMoneyFromFormatted("$12,000.10").String(); got != "12,000.10" {
		t.Fatalf("NewMoneyFromFormatted got %s", got)
	}
}

func TestMoneyRounding(t *testing.T) {
	// Half away from zero, symmetric for negatives.
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"2.365", "2.37"},
		{"-2.345", "-2.35"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		got := m.Round().String()
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(10.10)
	b := NewMoney(5.05)
	if got := a.Add(b).String(); got != "15.15" {
		t.Fatalf("Add got %s", got)
	}
	if got := a.Sub(b).String(); got != "5.05" {
		t.Fatalf("Sub got %s", got)
	}
	if got := a.Mul(stddec.NewFromFloat(2.5)).String(); got != "25.25" {
		t.Fatalf("Mul got %s", got)
	}
	if got := Sum(NewMoney(999.99), NewMoney(0.01), NewMoney(1000)).String(); got != "2,000.00" {
		t.Fatalf("Sum got %s", got)
	}
	if !Sum().Equal(Zero()) {
		t.Fatalf("empty Sum should be zero")
	}
	if !b.LessThan(a) || !a.GreaterThan(b) || a.Equal(b) {
		t.Fatalf("comparison logic failure")
	}
}

func TestMoneyFormat(t *testing.T) {
	m := NewMoney(1234.5)
	if got := m.String(); got != "1,234.50" {
		t.Fatalf("String got %s", got)
	}
	if got := m.Format(""); got != "$1,234.50" {
		t.Fatalf("Format got %s", got)
	}
	if got := NewMoney(-1234.5).Format("€"); got != "-€1,234.50" {
		t.Fatalf("Format got %s", got)
	}
	// Money passed back through the generic helpers keeps its value.
	if got, ok := Format(m, 0, true); !ok || got != "1,235" {
		t.Fatalf("Format(Money) got %s", got)
	}
}
