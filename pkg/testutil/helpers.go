// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/finance-calculator/pkg/loans"
)

// Float64Ptr returns a pointer to v, for filling optional request fields.
func Float64Ptr(v float64) *float64 {
	return &v
}

// IntPtr returns a pointer to v, for filling optional request fields.
func IntPtr(v int) *int {
	return &v
}

// FindLine finds a schedule line by payment number.
// Returns a pointer to the line if found, nil otherwise.
func FindLine(schedule []loans.Line, paymentNumber int) *loans.Line {
	for i := range schedule {
		if schedule[i].PaymentNumber == paymentNumber {
			return &schedule[i]
		}
	}
	return nil
}
