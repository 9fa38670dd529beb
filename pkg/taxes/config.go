// Package taxes holds the mutable tax-rate configuration shared by
// after-tax calculations.
package taxes

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculator/pkg/constants"
)

// ValidationError reports a rejected tax rate. When SetRate returns one the
// configured rate is left unchanged.
type ValidationError struct {
	Field string
	Value float64
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be between %v and %v, got %v",
		e.Field, constants.MinTaxRate, constants.MaxTaxRate, e.Value)
}

// Config is the process-wide tax configuration. One instance is created at
// startup and shared by every after-tax calculation; SetRate is the only
// mutator, so the rate never holds an out-of-range value. Safe for
// concurrent use; readers see the most recent completed update.
type Config struct {
	mu     sync.RWMutex
	rate   float64
	logger *zap.Logger
}

// NewConfig creates a tax configuration starting at the default rate.
func NewConfig(logger *zap.Logger) *Config {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Config{rate: constants.DefaultTaxRate, logger: logger}
}

// SetRate replaces the tax rate. Rates outside [0, 1] are rejected with a
// ValidationError and the current rate is kept. Calculations already in
// flight keep the rate they read; only later calculations observe the new
// value.
func (c *Config) SetRate(rate float64) error {
	if math.IsNaN(rate) || rate < constants.MinTaxRate || rate > constants.MaxTaxRate {
		c.logger.Warn("Rejected tax rate update",
			zap.String("op", "taxes.Config.SetRate"),
			zap.Float64("rate", rate))
		return &ValidationError{Field: "taxRate", Value: rate}
	}
	c.mu.Lock()
	c.rate = rate
	c.mu.Unlock()
	c.logger.Debug("Updated tax rate",
		zap.String("op", "taxes.Config.SetRate"),
		zap.Float64("rate", rate))
	return nil
}

// Rate returns the current tax rate.
func (c *Config) Rate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rate
}
