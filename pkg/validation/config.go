// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/finance-calculator/pkg/constants"
)

// AnnualRateWarnings reports advisory problems with a default annual rate.
// Rates are decimal fractions, so a value above 1 usually means the caller
// wrote a percentage; a zero rate is legal but makes the payment formula
// fault.
func AnnualRateWarnings(rate float64) []string {
	var warnings []string

	if rate > 1 {
		warnings = append(warnings, fmt.Sprintf(
			"defaults.annualRate %.2f is above 1.0; rates are decimal fractions, so 0.05 means 5%%",
			rate))
	}
	if rate < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"defaults.annualRate %.2f is negative", rate))
	}
	if rate == 0 {
		warnings = append(warnings,
			"defaults.annualRate 0 makes loan payment calculations return NaN")
	}

	return warnings
}

// TermYearsWarnings reports advisory problems with a default term.
func TermYearsWarnings(termYears int) []string {
	var warnings []string

	if termYears <= 0 {
		warnings = append(warnings, fmt.Sprintf(
			"defaults.termYears %d is not positive; schedules will be empty", termYears))
	}

	return warnings
}

// TaxRateWarnings reports a configured tax rate that the validated setter
// will reject at startup.
func TaxRateWarnings(rate float64) []string {
	var warnings []string

	if rate < constants.MinTaxRate || rate > constants.MaxTaxRate {
		warnings = append(warnings, fmt.Sprintf(
			"tax.rate %.2f is outside [%v, %v] and will be rejected at startup",
			rate, constants.MinTaxRate, constants.MaxTaxRate))
	}

	return warnings
}
