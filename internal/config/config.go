// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/validation"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// FINANCE_CALCULATOR_TAX_RATE overrides tax.rate.
const EnvPrefix = "FINANCE_CALCULATOR"

// Configuration holds all configuration for finance-calculator.
type Configuration struct {
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Tax      TaxConfig      `yaml:"tax,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}

// DefaultsConfig holds the fallback calculation parameters applied when a
// request leaves them unset. Rates are decimal fractions, so 0.05 means 5%.
type DefaultsConfig struct {
	AnnualRate float64 `yaml:"annualRate,omitempty"`
	TermYears  int     `yaml:"termYears,omitempty"`
}

// TaxConfig holds the tax rate applied to investment gains at startup.
type TaxConfig struct {
	Rate float64 `yaml:"rate,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() *Configuration {
	return &Configuration{
		Defaults: DefaultsConfig{
			AnnualRate: constants.DefaultAnnualRate,
			TermYears:  constants.DefaultTermYears,
		},
		Tax: TaxConfig{
			Rate: constants.DefaultTaxRate,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: constants.OutputFormatPretty,
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A .env file in the working directory is applied to
// the environment first, and FINANCE_CALCULATOR_* environment variables
// override file values.
func LoadConfiguration(configPath string) (*Configuration, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yml")

	defaults := Default()
	v.SetDefault("defaults.annualRate", defaults.Defaults.AnnualRate)
	v.SetDefault("defaults.termYears", defaults.Defaults.TermYears)
	v.SetDefault("tax.rate", defaults.Tax.Rate)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("output.format", defaults.Output.Format)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationOrDefault loads configPath when the file exists and falls
// back to the built-in defaults when it does not. Read or parse failures on
// an existing file are still errors.
func LoadConfigurationOrDefault(configPath string) (*Configuration, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadConfiguration(configPath)
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Warnings do not block startup; an out-of-range tax rate
// is rejected separately when it is applied to the tax configuration.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	warnings = append(warnings, validation.AnnualRateWarnings(c.Defaults.AnnualRate)...)
	warnings = append(warnings, validation.TermYearsWarnings(c.Defaults.TermYears)...)
	warnings = append(warnings, validation.TaxRateWarnings(c.Tax.Rate)...)

	return warnings
}
