// Package percent computes the two-decimal ratios shown in attendance stats.
package percent

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Of returns part/total*100 rounded to 2 decimals, or 0 when total is 0.
func Of(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(hundred).
		DivRound(decimal.NewFromInt(total), 2).
		InexactFloat64()
}
