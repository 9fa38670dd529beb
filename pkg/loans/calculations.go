// Package loans provides loan payment and amortization schedule calculations.
package loans

import (
	"math"

	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculator/pkg/mathutil"
	"github.com/iwvelando/finance-calculator/pkg/rates"
)

// Payment calculates the monthly payment for a loan using the standard
// amortization formula, rounded to currency precision.
//
// A zero annual rate makes the discount factor zero and the result is NaN.
// The fault propagates to the caller instead of being masked; callers that
// want an even principal split for interest-free loans use
// PaymentZeroRateSplit.
func Payment(principal, annualRate float64, termYears int) float64 {
	monthlyRate := rates.Monthly(annualRate)
	termMonths := float64(rates.TotalPayments(termYears))

	power := math.Pow(1.00+monthlyRate, termMonths)
	discountFactor := (power - 1.00) / power
	return mathutil.RoundCurrency(principal * monthlyRate / discountFactor)
}

// PaymentZeroRateSplit behaves like Payment but divides the principal evenly
// across the term when the annual rate is zero, for interest-free loans.
func PaymentZeroRateSplit(principal, annualRate float64, termYears int) float64 {
	if annualRate == 0 {
		return mathutil.RoundCurrency(principal / float64(rates.TotalPayments(termYears)))
	}
	return Payment(principal, annualRate, termYears)
}

// Line holds the values for a given payment in an amortization schedule.
// Values are not rounded; display rounding belongs to the renderer.
type Line struct {
	PaymentNumber    int
	Interest         float64
	Principal        float64
	RemainingBalance float64
}

// ScheduleGenerator provides utilities for generating loan amortization schedules.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// Generate creates a complete amortization schedule for a loan. The monthly
// payment and monthly rate are computed once before the loop. Every payment
// line in the term is emitted; the final balance is whatever the arithmetic
// leaves, so payment rounding shows up as a small residual rather than a
// forced zero. A zero rate yields NaN lines, matching Payment.
func (g *ScheduleGenerator) Generate(principal, annualRate float64, termYears int) []Line {
	monthlyPayment := Payment(principal, annualRate, termYears)
	monthlyRate := rates.Monthly(annualRate)
	termMonths := rates.TotalPayments(termYears)

	schedule := make([]Line, 0, termMonths)
	balance := principal
	for paymentNumber := 1; paymentNumber <= termMonths; paymentNumber++ {
		interest := balance * monthlyRate
		principalPortion := monthlyPayment - interest
		balance -= principalPortion
		schedule = append(schedule, Line{
			PaymentNumber:    paymentNumber,
			Interest:         interest,
			Principal:        principalPortion,
			RemainingBalance: balance,
		})
	}

	g.logger.Debug("Generated amortization schedule",
		zap.String("op", "loans.ScheduleGenerator.Generate"),
		zap.Float64("principal", principal),
		zap.Float64("annualRate", annualRate),
		zap.Int("termYears", termYears),
		zap.Float64("monthlyPayment", monthlyPayment),
		zap.Int("lines", len(schedule)),
		zap.Float64("finalBalance", balance))

	return schedule
}
