package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iwvelando/finance-calculator/internal/config"
	"github.com/iwvelando/finance-calculator/internal/engine"
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/output"
	"github.com/iwvelando/finance-calculator/pkg/validation"
)

// Operation names accepted by the -op flag.
const (
	opLoanPayment      = "loan-payment"
	opInvestmentReturn = "investment-return"
	opAfterTaxReturn   = "after-tax-return"
	opSchedule         = "schedule"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	operation := flag.String("op", "", "operation to run: loan-payment, investment-return, after-tax-return, schedule")
	principalFlag := flag.String("principal", "", "principal amount borrowed or invested")
	rateFlag := flag.String("rate", "", "annual interest rate as a decimal fraction (default from config)")
	termFlag := flag.String("term", "", "term in years (default from config)")
	applyTax := flag.Bool("apply-tax", false, "apply the configured tax rate to investment gains")
	taxRateFlag := flag.String("tax-rate", "", "update the tax rate before calculating (0 to 1)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// An explicitly-given config file must exist; the default location may be absent.
	configExplicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configExplicit = true
		}
	})

	var conf *config.Configuration
	var err error
	if configExplicit {
		conf, err = config.LoadConfiguration(*configLocation)
	} else {
		conf, err = config.LoadConfigurationOrDefault(*configLocation)
	}
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *operation == "" {
		logger.Fatal("no operation given; use -op loan-payment, investment-return, after-tax-return, or schedule",
			zap.String("op", "main"),
		)
	}
	if *principalFlag == "" {
		logger.Fatal("no principal given; use -principal",
			zap.String("op", "main"),
		)
	}
	principal, err := strconv.ParseFloat(*principalFlag, 64)
	if err != nil {
		logger.Fatal("failed to parse principal",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	eng, err := engine.New(logger, conf)
	if err != nil {
		logger.Fatal("failed to initialize calculation engine",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Apply a tax rate update before calculating, through the validated setter.
	if *taxRateFlag != "" {
		taxRate, err := strconv.ParseFloat(*taxRateFlag, 64)
		if err != nil {
			logger.Fatal("failed to parse tax rate",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if err := eng.SetTaxRate(taxRate); err != nil {
			logger.Fatal("failed to update tax rate",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	req := engine.Request{Principal: principal}
	if *rateFlag != "" {
		rate, err := strconv.ParseFloat(*rateFlag, 64)
		if err != nil {
			logger.Fatal("failed to parse rate",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		req.AnnualRate = &rate
	}
	if *termFlag != "" {
		term, err := strconv.Atoi(*termFlag)
		if err != nil {
			logger.Fatal("failed to parse term",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		req.TermYears = &term
	}

	// Run the requested operation and handle output.
	switch *operation {
	case opLoanPayment:
		payment := eng.LoanPayment(req)
		fatalIfNotFinite(logger, payment)
		renderAmount(outputFormat, "loan payment", payment)
	case opInvestmentReturn:
		finalValue := eng.InvestmentReturn(req, *applyTax)
		fatalIfNotFinite(logger, finalValue)
		renderAmount(outputFormat, "investment return", finalValue)
	case opAfterTaxReturn:
		finalValue := eng.AfterTaxReturn(req)
		fatalIfNotFinite(logger, finalValue)
		renderAmount(outputFormat, "after-tax return", finalValue)
	case opSchedule:
		payment := eng.LoanPayment(req)
		fatalIfNotFinite(logger, payment)
		schedule := eng.AmortizationSchedule(req)
		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyFormat(payment, schedule)
		case constants.OutputFormatCSV:
			output.CsvFormat(schedule)
		}
	default:
		logger.Fatal("unknown operation: "+*operation,
			zap.String("op", "main"),
		)
	}
}

// fatalIfNotFinite stops before rendering when the arithmetic faulted; a
// zero annual rate makes the payment formula divide by zero.
func fatalIfNotFinite(logger *zap.Logger, result float64) {
	if math.IsNaN(result) || math.IsInf(result, 0) {
		logger.Fatal("calculation produced a non-finite result; a zero annual rate makes the payment formula divide by zero",
			zap.String("op", "main"),
			zap.Float64("result", result),
		)
	}
}

func renderAmount(outputFormat, operation string, amount float64) {
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyResult(operation, amount)
	case constants.OutputFormatCSV:
		output.CsvResult(operation, amount)
	}
}
