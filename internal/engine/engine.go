// Package engine wires configuration to the calculators and is the entry
// point hosts use to run operations.
package engine

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculator/internal/config"
	"github.com/iwvelando/finance-calculator/internal/metrics"
	"github.com/iwvelando/finance-calculator/pkg/interest"
	"github.com/iwvelando/finance-calculator/pkg/investments"
	"github.com/iwvelando/finance-calculator/pkg/loans"
	"github.com/iwvelando/finance-calculator/pkg/taxes"
)

// Operation names recorded in logs and metrics.
const (
	OpLoanPayment          = "loan_payment"
	OpInvestmentReturn     = "investment_return"
	OpAfterTaxReturn       = "after_tax_return"
	OpAmortizationSchedule = "amortization_schedule"
)

// Request carries the inputs of a calculation. AnnualRate and TermYears are
// optional; nil fields resolve to the configured defaults when the operation
// runs. Rates are decimal fractions, so 0.045 means 4.5%.
type Request struct {
	Principal  float64
	AnnualRate *float64
	TermYears  *int
}

// Engine owns the calculators and the shared tax and clock state. One engine
// serves all requests of a process; its operations are safe for concurrent
// use.
type Engine struct {
	logger      *zap.Logger
	taxes       *taxes.Config
	clock       *interest.Clock
	investments *investments.Calculator
	schedules   *loans.ScheduleGenerator

	defaultAnnualRate float64
	defaultTermYears  int
}

// New creates an engine from the loaded configuration. The configured tax
// rate passes through the validated setter, so an out-of-range value fails
// construction with the same ValidationError a runtime update would get.
func New(logger *zap.Logger, conf *config.Configuration) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf == nil {
		conf = config.Default()
	}

	taxConfig := taxes.NewConfig(logger)
	if err := taxConfig.SetRate(conf.Tax.Rate); err != nil {
		return nil, err
	}

	clock := interest.NewClock()
	compounder := interest.NewCalculator(logger, clock)

	return &Engine{
		logger:            logger,
		taxes:             taxConfig,
		clock:             clock,
		investments:       investments.NewCalculator(logger, taxConfig, compounder),
		schedules:         loans.NewScheduleGenerator(logger),
		defaultAnnualRate: conf.Defaults.AnnualRate,
		defaultTermYears:  conf.Defaults.TermYears,
	}, nil
}

// resolve fills unset request fields from the configured defaults.
func (e *Engine) resolve(req Request) (principal, annualRate float64, termYears int) {
	principal = req.Principal
	annualRate = e.defaultAnnualRate
	if req.AnnualRate != nil {
		annualRate = *req.AnnualRate
	}
	termYears = e.defaultTermYears
	if req.TermYears != nil {
		termYears = *req.TermYears
	}
	return principal, annualRate, termYears
}

// recordCalculation counts an operation, marking non-finite results as faults.
func recordCalculation(operation string, result float64) {
	status := metrics.StatusOK
	if math.IsNaN(result) || math.IsInf(result, 0) {
		status = metrics.StatusFault
	}
	metrics.Calculations.WithLabelValues(operation, status).Inc()
}

// LoanPayment computes the monthly loan payment for the request. A zero
// annual rate yields NaN; the fault is counted and returned, not masked.
func (e *Engine) LoanPayment(req Request) float64 {
	principal, annualRate, termYears := e.resolve(req)
	result := loans.Payment(principal, annualRate, termYears)
	e.logger.Debug("Computed loan payment",
		zap.String("op", "engine.LoanPayment"),
		zap.Float64("principal", principal),
		zap.Float64("annualRate", annualRate),
		zap.Int("termYears", termYears),
		zap.Float64("payment", result))
	recordCalculation(OpLoanPayment, result)
	return result
}

// InvestmentReturn computes the final investment value, optionally with the
// configured tax applied to the gains.
func (e *Engine) InvestmentReturn(req Request, applyTax bool) float64 {
	principal, annualRate, termYears := e.resolve(req)
	result := e.investments.Return(principal, annualRate, termYears, applyTax)
	recordCalculation(OpInvestmentReturn, result)
	return result
}

// AfterTaxReturn computes the final investment value with the tax always
// applied.
func (e *Engine) AfterTaxReturn(req Request) float64 {
	principal, annualRate, termYears := e.resolve(req)
	result := e.investments.AfterTaxReturn(principal, annualRate, termYears)
	recordCalculation(OpAfterTaxReturn, result)
	return result
}

// AmortizationSchedule generates the full payment schedule for the request.
func (e *Engine) AmortizationSchedule(req Request) []loans.Line {
	principal, annualRate, termYears := e.resolve(req)
	schedule := e.schedules.Generate(principal, annualRate, termYears)

	status := metrics.StatusOK
	if n := len(schedule); n > 0 {
		final := schedule[n-1].RemainingBalance
		if math.IsNaN(final) || math.IsInf(final, 0) {
			status = metrics.StatusFault
		}
	}
	metrics.Calculations.WithLabelValues(OpAmortizationSchedule, status).Inc()
	return schedule
}

// SetTaxRate updates the shared tax rate through the validated setter.
// Calculations already in flight keep the rate they read.
func (e *Engine) SetTaxRate(rate float64) error {
	if err := e.taxes.SetRate(rate); err != nil {
		metrics.TaxRateUpdates.WithLabelValues(metrics.StatusInvalid).Inc()
		return err
	}
	metrics.TaxRateUpdates.WithLabelValues(metrics.StatusOK).Inc()
	return nil
}

// TaxRate returns the current tax rate.
func (e *Engine) TaxRate() float64 {
	return e.taxes.Rate()
}

// DefaultAnnualRate returns the configured fallback annual rate.
func (e *Engine) DefaultAnnualRate() float64 {
	return e.defaultAnnualRate
}

// DefaultTermYears returns the configured fallback term.
func (e *Engine) DefaultTermYears() int {
	return e.defaultTermYears
}

// LastCalculation reports when a compound-interest computation last ran.
// Loan payment and schedule operations do not move it.
func (e *Engine) LastCalculation() (time.Time, bool) {
	return e.clock.Last()
}
