// Package metrics exposes Prometheus counters for calculator operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values recorded with each counted operation.
const (
	// StatusOK marks an operation that produced a finite result
	StatusOK = "ok"

	// StatusFault marks an operation whose result was NaN or infinite
	StatusFault = "fault"

	// StatusInvalid marks a rejected input, e.g. an out-of-range tax rate
	StatusInvalid = "invalid"
)

var (
	// Calculations counts calculator operations by operation name and status.
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_calculator_calculations_total",
			Help: "Total calculator operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// TaxRateUpdates counts tax rate update attempts by status.
	TaxRateUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_calculator_tax_rate_updates_total",
			Help: "Total tax rate update attempts by status",
		},
		[]string{"status"},
	)
)
