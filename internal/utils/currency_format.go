package utils

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// FormatFixed renders amount with exactly places decimals. Rounding works on the exact
// binary value of amount with ties away from zero, so 1.005 gives "1.00" and 0.125 gives "0.13".
// Non-finite values render as "NaN", "Infinity" and "-Infinity".
// Example: 9 with places 2 returns "9.00"
func FormatFixed(amount float64, places int32) string {
	switch {
	case math.IsNaN(amount):
		return "NaN"
	case math.IsInf(amount, 1):
		return "Infinity"
	case math.IsInf(amount, -1):
		return "-Infinity"
	}

	out := FormatDecimalFixed(decimal.NewFromBigInt(scaledUnits(math.Abs(amount), places), -places), places)
	if amount < 0 {
		return "-" + out
	}
	return out
}

// FormatDecimalFixed formats a decimal with exactly places decimals.
// Example: 12.3456 with places 2 returns "12.35"
// Example: 12.3456 with places 0 returns "12"
func FormatDecimalFixed(amount decimal.Decimal, places int32) string {
	return amount.StringFixed(places)
}

// scaledUnits returns abs * 10^places rounded half up, computed without loss.
func scaledUnits(abs float64, places int32) *big.Int {
	exact := new(big.Float).SetFloat64(abs)
	factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)

	scaled := new(big.Float).SetPrec(exact.Prec() + uint(4*places) + 8)
	scaled.Mul(exact, new(big.Float).SetInt(factor))

	units, _ := scaled.Int(nil)
	rest := new(big.Float).Sub(scaled, new(big.Float).SetInt(units))
	if rest.Cmp(big.NewFloat(0.5)) >= 0 {
		units.Add(units, big.NewInt(1))
	}
	return units
}
