package utils

import "github.com/shopspring/decimal"

// RoundCents rounds a dollar amount to the nearest cent using decimal
// arithmetic, so repeated scans produce identical output across platforms.
func RoundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
