package investments

import (
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculator/pkg/interest"
	"github.com/iwvelando/finance-calculator/pkg/taxes"
)

func newTestCalculator(t *testing.T) (*Calculator, *taxes.Config, *interest.Clock) {
	t.Helper()
	logger := zap.NewNop()
	taxConfig := taxes.NewConfig(logger)
	clock := interest.NewClock()
	compounder := interest.NewCalculator(logger, clock)
	return NewCalculator(logger, taxConfig, compounder), taxConfig, clock
}

func TestReturn(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		annualRate float64
		termYears  int
		applyTax   bool
		expected   float64
	}{
		{
			name:       "Seven percent over ten years before tax",
			principal:  10000,
			annualRate: 0.07,
			termYears:  10,
			applyTax:   false,
			expected:   19671.51,
		},
		{
			name:       "Seven percent over ten years after tax",
			principal:  10000,
			annualRate: 0.07,
			termYears:  10,
			applyTax:   true,
			expected:   17737.21,
		},
		{
			name:       "Default rate over default term",
			principal:  10000,
			annualRate: 0.05,
			termYears:  5,
			applyTax:   false,
			expected:   12762.82,
		},
		{
			name:       "Zero rate leaves principal untouched even with tax",
			principal:  10000,
			annualRate: 0.0,
			termYears:  5,
			applyTax:   true,
			expected:   10000.00,
		},
		{
			name:       "Zero term returns principal",
			principal:  5000,
			annualRate: 0.07,
			termYears:  0,
			applyTax:   true,
			expected:   5000.00,
		},
		{
			name:       "Negative growth applies the tax formula to the loss",
			principal:  1000,
			annualRate: -0.5,
			termYears:  2,
			applyTax:   true,
			expected:   400.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, _, _ := newTestCalculator(t)
			result := calc.Return(tt.principal, tt.annualRate, tt.termYears, tt.applyTax)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("Return(%v, %v, %v, %v) = %.2f, expected %.2f",
					tt.principal, tt.annualRate, tt.termYears, tt.applyTax, result, tt.expected)
			}
		})
	}
}

func TestAfterTaxReturnMatchesReturnWithTax(t *testing.T) {
	calc, _, _ := newTestCalculator(t)

	scenarios := []struct {
		principal  float64
		annualRate float64
		termYears  int
	}{
		{10000, 0.07, 10},
		{5000, 0.05, 5},
		{250000, 0.03, 20},
	}

	for _, s := range scenarios {
		viaReturn := calc.Return(s.principal, s.annualRate, s.termYears, true)
		viaAfterTax := calc.AfterTaxReturn(s.principal, s.annualRate, s.termYears)
		if viaReturn != viaAfterTax {
			t.Errorf("AfterTaxReturn(%v, %v, %v) = %v, Return with tax = %v",
				s.principal, s.annualRate, s.termYears, viaAfterTax, viaReturn)
		}
	}
}

func TestTaxReducesPositiveGains(t *testing.T) {
	calc, _, _ := newTestCalculator(t)

	beforeTax := calc.Return(10000, 0.07, 10, false)
	afterTax := calc.Return(10000, 0.07, 10, true)

	if afterTax >= beforeTax {
		t.Errorf("After-tax value %.2f should be below pre-tax value %.2f", afterTax, beforeTax)
	}
}

func TestZeroTaxRateLeavesReturnUnchanged(t *testing.T) {
	calc, taxConfig, _ := newTestCalculator(t)
	if err := taxConfig.SetRate(0.0); err != nil {
		t.Fatalf("SetRate(0) returned error: %v", err)
	}

	beforeTax := calc.Return(10000, 0.07, 10, false)
	afterTax := calc.Return(10000, 0.07, 10, true)

	if beforeTax != afterTax {
		t.Errorf("With a zero tax rate the after-tax value %.2f should equal the pre-tax value %.2f",
			afterTax, beforeTax)
	}
}

func TestReturnGrowsWithTerm(t *testing.T) {
	calc, _, _ := newTestCalculator(t)

	previous := 0.0
	for _, termYears := range []int{1, 2, 5, 10, 20, 30} {
		result := calc.Return(10000, 0.07, termYears, false)
		if result <= previous {
			t.Fatalf("Return over %d years = %.2f, expected growth beyond %.2f",
				termYears, result, previous)
		}
		previous = result
	}
}

func TestTaxRateReadAtInvocation(t *testing.T) {
	calc, taxConfig, _ := newTestCalculator(t)

	atDefault := calc.AfterTaxReturn(10000, 0.07, 10)
	if math.Abs(atDefault-17737.21) > 0.01 {
		t.Fatalf("After-tax return at the default rate = %.2f, expected 17737.21", atDefault)
	}

	if err := taxConfig.SetRate(0.25); err != nil {
		t.Fatalf("SetRate(0.25) returned error: %v", err)
	}

	atUpdated := calc.AfterTaxReturn(10000, 0.07, 10)
	if math.Abs(atUpdated-17253.64) > 0.01 {
		t.Errorf("After-tax return after the update = %.2f, expected 17253.64", atUpdated)
	}
}

func TestReturnStampsCalculationClock(t *testing.T) {
	calc, _, clock := newTestCalculator(t)

	if _, ok := clock.Last(); ok {
		t.Fatal("Clock should be unstamped before the first calculation")
	}

	calc.Return(10000, 0.07, 10, false)
	if _, ok := clock.Last(); !ok {
		t.Error("Return should stamp the calculation clock through the compounder")
	}
}

func TestNewCalculatorDefaults(t *testing.T) {
	calc := NewCalculator(nil, nil, nil)

	result := calc.AfterTaxReturn(10000, 0.07, 10)
	if math.Abs(result-17737.21) > 0.01 {
		t.Errorf("Calculator with default collaborators = %.2f, expected 17737.21", result)
	}
}
