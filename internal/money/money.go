// Package money rounds and sums currency amounts through decimal arithmetic so
// that totals are reproducible to the cent.
package money

import "github.com/shopspring/decimal"

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Sum adds amounts exactly and rounds the result to cents.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(2).InexactFloat64()
}

// Mul multiplies the factors exactly. The result is not rounded.
func Mul(factors ...float64) float64 {
	if len(factors) == 0 {
		return 0
	}
	product := decimal.NewFromFloat(factors[0])
	for _, f := range factors[1:] {
		product = product.Mul(decimal.NewFromFloat(f))
	}
	return product.InexactFloat64()
}

// Format renders v with exactly two decimals, e.g. 345 -> "345.00".
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Parse reads a plain decimal string such as "345.00".
func Parse(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}
