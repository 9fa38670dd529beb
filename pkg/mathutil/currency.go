// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/iwvelando/finance-calculator/pkg/constants"
)

// RoundCurrency rounds a value to two decimals, half away from zero, i.e. to
// represent real currency. Non-finite values pass through unchanged so that
// arithmetic faults stay visible to callers instead of being masked by
// rounding.
func RoundCurrency(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return val
	}
	rounded, _ := decimal.NewFromFloat(val).Round(constants.CurrencyDecimalPlaces).Float64()
	return rounded
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// IsNegative checks if a value is negative (less than negative tolerance)
func IsNegative(val float64) bool {
	return val < -constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ApplyRate applies a fractional rate to a value, e.g. investment gains times
// a tax rate. Rates are decimal fractions, so 0.20 means 20%.
func ApplyRate(value, rate float64) float64 {
	return value * rate
}
