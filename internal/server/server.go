// Package server exposes the calculator operations as a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/iwvelando/finance-calculator/internal/engine"
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/iwvelando/finance-calculator/pkg/loans"
	"github.com/iwvelando/finance-calculator/pkg/output"
)

// nonFiniteMessage explains the zero-rate quirk to API callers: the core
// propagates the arithmetic fault and the host translates it, because JSON
// cannot carry NaN.
const nonFiniteMessage = "calculation produced a non-finite result; a zero annual rate makes the payment formula divide by zero"

type handler struct {
	logger      *zap.Logger
	engine      *engine.Engine
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, eng *engine.Engine, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, engine: eng, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Calculation endpoints
	mux.HandleFunc("/api/loan-payment", h.handleLoanPayment)
	mux.HandleFunc("/api/investment-return", h.handleInvestmentReturn)
	mux.HandleFunc("/api/after-tax-return", h.handleAfterTaxReturn)
	mux.HandleFunc("/api/amortization-schedule", h.handleAmortizationSchedule)

	// Shared configuration endpoints
	mux.HandleFunc("/api/tax-rate", h.handleTaxRate)
	mux.HandleFunc("/api/defaults", h.handleDefaults)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// calculationRequest carries the inputs of a calculation. AnnualRate and
// TermYears are optional; omitted fields resolve to the configured defaults.
// Rates are decimal fractions, so 0.045 means 4.5%.
type calculationRequest struct {
	Principal  float64  `json:"principal"`
	AnnualRate *float64 `json:"annualRate"`
	TermYears  *int     `json:"termYears"`
	ApplyTax   bool     `json:"applyTax"`
}

type paymentResponse struct {
	Payment    float64 `json:"payment"`
	AnnualRate float64 `json:"annualRate"`
	TermYears  int     `json:"termYears"`
}

type returnResponse struct {
	FinalValue float64  `json:"finalValue"`
	TaxApplied bool     `json:"taxApplied"`
	TaxRate    *float64 `json:"taxRate,omitempty"`
}

type scheduleLine struct {
	PaymentNumber    int     `json:"paymentNumber"`
	Interest         float64 `json:"interest"`
	Principal        float64 `json:"principal"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type scheduleResponse struct {
	Payment float64        `json:"payment"`
	Lines   []scheduleLine `json:"lines"`
	CSV     string         `json:"csv"`
}

type taxRateRequest struct {
	Rate float64 `json:"rate"`
}

type taxRateResponse struct {
	Rate float64 `json:"rate"`
}

type defaultsResponse struct {
	AnnualRate float64 `json:"annualRate"`
	TermYears  int     `json:"termYears"`
	TaxRate    float64 `json:"taxRate"`
}

func (h *handler) handleLoanPayment(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleLoanPayment"

	req, ok := h.decodeCalculation(w, r, op)
	if !ok {
		return
	}

	payment := h.engine.LoanPayment(engine.Request{
		Principal:  req.Principal,
		AnnualRate: req.AnnualRate,
		TermYears:  req.TermYears,
	})
	if !isFinite(payment) {
		h.respondError(w, http.StatusUnprocessableEntity, nonFiniteMessage, op)
		return
	}

	annualRate, termYears := h.resolve(req)
	h.logger.Info("loan payment computed",
		zap.String("op", op),
		zap.Float64("principal", req.Principal),
		zap.Float64("annualRate", annualRate),
		zap.Int("termYears", termYears),
	)
	h.writeJSON(w, http.StatusOK, paymentResponse{
		Payment:    payment,
		AnnualRate: annualRate,
		TermYears:  termYears,
	})
}

func (h *handler) handleInvestmentReturn(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleInvestmentReturn"

	req, ok := h.decodeCalculation(w, r, op)
	if !ok {
		return
	}

	finalValue := h.engine.InvestmentReturn(engine.Request{
		Principal:  req.Principal,
		AnnualRate: req.AnnualRate,
		TermYears:  req.TermYears,
	}, req.ApplyTax)
	if !isFinite(finalValue) {
		h.respondError(w, http.StatusUnprocessableEntity, nonFiniteMessage, op)
		return
	}

	resp := returnResponse{FinalValue: finalValue, TaxApplied: req.ApplyTax}
	if req.ApplyTax {
		rate := h.engine.TaxRate()
		resp.TaxRate = &rate
	}

	h.logger.Info("investment return computed",
		zap.String("op", op),
		zap.Float64("principal", req.Principal),
		zap.Bool("applyTax", req.ApplyTax),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleAfterTaxReturn(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAfterTaxReturn"

	req, ok := h.decodeCalculation(w, r, op)
	if !ok {
		return
	}

	finalValue := h.engine.AfterTaxReturn(engine.Request{
		Principal:  req.Principal,
		AnnualRate: req.AnnualRate,
		TermYears:  req.TermYears,
	})
	if !isFinite(finalValue) {
		h.respondError(w, http.StatusUnprocessableEntity, nonFiniteMessage, op)
		return
	}

	rate := h.engine.TaxRate()
	h.logger.Info("after-tax return computed",
		zap.String("op", op),
		zap.Float64("principal", req.Principal),
		zap.Float64("taxRate", rate),
	)
	h.writeJSON(w, http.StatusOK, returnResponse{
		FinalValue: finalValue,
		TaxApplied: true,
		TaxRate:    &rate,
	})
}

func (h *handler) handleAmortizationSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAmortizationSchedule"

	req, ok := h.decodeCalculation(w, r, op)
	if !ok {
		return
	}

	engineReq := engine.Request{
		Principal:  req.Principal,
		AnnualRate: req.AnnualRate,
		TermYears:  req.TermYears,
	}
	payment := h.engine.LoanPayment(engineReq)
	if !isFinite(payment) {
		h.respondError(w, http.StatusUnprocessableEntity, nonFiniteMessage, op)
		return
	}

	schedule := h.engine.AmortizationSchedule(engineReq)
	lines := toScheduleLines(schedule)

	h.logger.Info("amortization schedule generated",
		zap.String("op", op),
		zap.Float64("principal", req.Principal),
		zap.Int("lines", len(lines)),
	)
	h.writeJSON(w, http.StatusOK, scheduleResponse{
		Payment: payment,
		Lines:   lines,
		CSV:     output.CsvString(schedule),
	})
}

func (h *handler) handleTaxRate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleTaxRate"

	switch r.Method {
	case http.MethodGet:
		h.writeJSON(w, http.StatusOK, taxRateResponse{Rate: h.engine.TaxRate()})
	case http.MethodPut:
		var req taxRateRequest
		if !h.decodeJSON(w, r, &req, op) {
			return
		}
		if err := h.engine.SetTaxRate(req.Rate); err != nil {
			h.respondError(w, http.StatusUnprocessableEntity, err.Error(), op)
			return
		}
		h.logger.Info("tax rate updated",
			zap.String("op", op),
			zap.Float64("rate", req.Rate),
		)
		h.writeJSON(w, http.StatusOK, taxRateResponse{Rate: h.engine.TaxRate()})
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, defaultsResponse{
		AnnualRate: h.engine.DefaultAnnualRate(),
		TermYears:  h.engine.DefaultTermYears(),
		TaxRate:    h.engine.TaxRate(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

// decodeCalculation enforces the POST method and decodes the shared
// calculation request body.
func (h *handler) decodeCalculation(w http.ResponseWriter, r *http.Request, op string) (calculationRequest, bool) {
	var req calculationRequest

	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return req, false
	}
	if !h.decodeJSON(w, r, &req, op) {
		return req, false
	}
	return req, true
}

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse request body: %v", err), op)
		return false
	}
	return true
}

// resolve reports the rate and term a calculation request resolves to, for
// echoing back to the client.
func (h *handler) resolve(req calculationRequest) (annualRate float64, termYears int) {
	annualRate = h.engine.DefaultAnnualRate()
	if req.AnnualRate != nil {
		annualRate = *req.AnnualRate
	}
	termYears = h.engine.DefaultTermYears()
	if req.TermYears != nil {
		termYears = *req.TermYears
	}
	return annualRate, termYears
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculator request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func toScheduleLines(schedule []loans.Line) []scheduleLine {
	lines := make([]scheduleLine, 0, len(schedule))
	for _, line := range schedule {
		lines = append(lines, scheduleLine(line))
	}
	return lines
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
