// Package pricing derives tax and total from a base amount.
package pricing

import "math"

// TaxRate is the storefront's fixed tax rate.
const TaxRate = 0.08

// roundEpsilon absorbs binary floating-point error before rounding, so
// 1.005*100 = 100.49999... still rounds up.
const roundEpsilon = 1e-9

// Quote is the deterministic price breakdown shown in the checkout panel.
type Quote struct {
	Base  float64
	Tax   float64
	Total float64
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	scaled := v * 100
	if scaled < 0 {
		return math.Ceil(scaled-0.5-roundEpsilon) / 100
	}
	return math.Floor(scaled+0.5+roundEpsilon) / 100
}

// Compute derives the quote for a base amount. Pure and side-effect free.
func Compute(base float64) Quote {
	tax := Round2(base * TaxRate)
	return Quote{
		Base:  base,
		Tax:   tax,
		Total: Round2(base + tax),
	}
}
