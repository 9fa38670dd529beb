// Package interest implements compound-interest growth and the calculation
// clock that records when a computation last ran.
package interest

import (
	"math"

	"go.uber.org/zap"
)

// Compound returns the value of principal grown at annualRate, compounded
// once per year, over termYears. Rates are decimal fractions, so 0.07 means
// 7% per year. A zero term returns the principal unchanged. The function is
// pure; inputs are not validated.
func Compound(principal, annualRate float64, termYears int) float64 {
	return principal * math.Pow(1+annualRate, float64(termYears))
}

// Calculator computes compound growth and stamps the calculation clock on
// every call.
type Calculator struct {
	logger *zap.Logger
	clock  *Clock
}

// NewCalculator creates a calculator that stamps clock on each computation.
func NewCalculator(logger *zap.Logger, clock *Clock) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = NewClock()
	}
	return &Calculator{logger: logger, clock: clock}
}

// Compound grows principal at annualRate compounded annually over termYears,
// recording the calculation time on the clock.
func (c *Calculator) Compound(principal, annualRate float64, termYears int) float64 {
	c.clock.Stamp()
	result := Compound(principal, annualRate, termYears)
	c.logger.Debug("Computed compound growth",
		zap.String("op", "interest.Calculator.Compound"),
		zap.Float64("principal", principal),
		zap.Float64("annualRate", annualRate),
		zap.Int("termYears", termYears),
		zap.Float64("result", result))
	return result
}

// Clock returns the calculation clock this calculator stamps.
func (c *Calculator) Clock() *Clock {
	return c.clock
}
