// Package rates converts between the annual and monthly interest rate forms
// used by the calculators.
//
// Rates are decimal fractions throughout, so 0.045 means 4.5% per year.
package rates

import "github.com/iwvelando/finance-calculator/pkg/constants"

// Monthly converts an annual interest rate to the monthly rate used by
// payment and amortization calculations.
func Monthly(annualRate float64) float64 {
	return annualRate / constants.MonthsPerYear
}

// TotalPayments returns the number of monthly payments in a term.
func TotalPayments(termYears int) int {
	return termYears * constants.MonthsPerYear
}
