// Package investments computes compound-interest investment returns,
// optionally reduced by the configured tax on gains.
package investments

import (
	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculator/pkg/interest"
	"github.com/iwvelando/finance-calculator/pkg/mathutil"
	"github.com/iwvelando/finance-calculator/pkg/taxes"
)

// Calculator handles investment return computations. The tax rate comes from
// the shared tax configuration and is read once per calculation, so a
// concurrent rate update affects only calculations that read after it.
type Calculator struct {
	logger     *zap.Logger
	taxes      *taxes.Config
	compounder *interest.Calculator
}

// NewCalculator creates a calculator for investment returns.
func NewCalculator(logger *zap.Logger, taxConfig *taxes.Config, compounder *interest.Calculator) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if taxConfig == nil {
		taxConfig = taxes.NewConfig(logger)
	}
	if compounder == nil {
		compounder = interest.NewCalculator(logger, nil)
	}
	return &Calculator{logger: logger, taxes: taxConfig, compounder: compounder}
}

// Return computes the final value of principal invested at annualRate,
// compounded annually over termYears. When applyTax is set the configured
// tax rate is applied to the gains, total minus principal, and the net value
// is returned. The result is rounded to currency precision.
func (c *Calculator) Return(principal, annualRate float64, termYears int, applyTax bool) float64 {
	total := c.compounder.Compound(principal, annualRate, termYears)

	taxRate := 0.0
	taxAmount := 0.0
	if applyTax {
		taxRate = c.taxes.Rate()
		taxAmount = mathutil.ApplyRate(total-principal, taxRate)
		total -= taxAmount
	}

	c.logger.Debug("Computed investment return",
		zap.String("op", "investments.Calculator.Return"),
		zap.Float64("principal", principal),
		zap.Float64("annualRate", annualRate),
		zap.Int("termYears", termYears),
		zap.Bool("applyTax", applyTax),
		zap.Float64("taxRate", taxRate),
		zap.Float64("taxAmount", taxAmount),
		zap.Float64("finalValue", total))

	return mathutil.RoundCurrency(total)
}

// AfterTaxReturn computes the final value with the tax on gains always
// applied. It delegates to Return.
func (c *Calculator) AfterTaxReturn(principal, annualRate float64, termYears int) float64 {
	return c.Return(principal, annualRate, termYears, true)
}
