// Package constants provides shared constants for the finance-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyDecimalPlaces is the number of decimal places in a currency amount
	CurrencyDecimalPlaces = 2
)

// Calculation defaults. Rates are decimal fractions, so 0.05 means 5%.
const (
	// DefaultAnnualRate is the annual interest rate assumed when none is given
	DefaultAnnualRate = 0.05

	// DefaultTermYears is the term assumed when none is given
	DefaultTermYears = 5

	// DefaultTaxRate is the tax rate applied to investment gains at startup
	DefaultTaxRate = 0.20
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API server
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// MinTaxRate is the lowest valid tax rate
	MinTaxRate = 0.0

	// MaxTaxRate is the highest valid tax rate
	MaxTaxRate = 1.0
)

// Schedule display constants
const (
	// ScheduleHeadLines is how many leading schedule lines pretty output shows
	// before eliding the middle of a long schedule
	ScheduleHeadLines = 12
)
