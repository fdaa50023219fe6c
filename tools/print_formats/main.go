package main

import (
	"fmt"

	"github.com/lski/toolbox/pkg/number"
	"github.com/shopspring/decimal"
)

// Prints how awkward values round and format so changes to the number package
// can be eyeballed against float64 arithmetic.
func main() {
	values := []string{"1.005", "2.5", "-2.5", "0.615", "999.995", "-0.004", "1234567.891", "1e21"}

	fmt.Printf("%-14s %-12s %-22s %-16s %s\n", "value", "float %.2f", "Format(v, 2, true)", "Round(v, 2)", "Round(v, -2)")
	for _, v := range values {
		f, _ := decimal.RequireFromString(v).Float64()
		s, _ := number.Format(v, 2, true)
		r, _ := number.Round(v, 2)
		h, _ := number.Round(v, -2)
		fmt.Printf("%-14s %-12.2f %-22s %-16v %v\n", v, f, s, r, h)
	}

	fmt.Println()
	for _, text := range []string{"$1,234.56", "(42.10)", "USD -7", "n/a", "1.2.3"} {
		fmt.Printf("RemoveFormatNumber(%q) = %v\n", text, number.RemoveFormatNumber(text))
	}
}
