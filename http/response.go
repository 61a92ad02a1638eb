package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mortgage-planner/domain"
)

type scheduleResponse struct {
	Schedule            domain.Schedule      `json:"schedule"`
	YearlySummary       []domain.YearSummary `json:"yearlySummary"`
	RecommendedMaxMonth int                  `json:"recommendedMaxMonth"`
	EarlyRepayment      *outcomeResponse     `json:"earlyRepayment,omitempty"`
}

type combinedResponse struct {
	Commercial          domain.Schedule      `json:"commercial"`
	Fund                domain.Schedule      `json:"fund"`
	Combined            domain.Schedule      `json:"combined"`
	YearlySummary       []domain.YearSummary `json:"yearlySummary"`
	RecommendedMaxMonth int                  `json:"recommendedMaxMonth"`
	EarlyRepayment      *outcomeResponse     `json:"earlyRepayment,omitempty"`
}

type outcomeResponse struct {
	Original        domain.Schedule `json:"original"`
	AfterRepayment  domain.Schedule `json:"afterRepayment"`
	RepaymentAmount float64         `json:"repaymentAmount"`
	SavedInterest   float64         `json:"savedInterest"`
	Effect          effectResponse  `json:"effect"`
}

type effectResponse struct {
	Kind        string   `json:"kind"`
	SavedMonths *int     `json:"savedMonths,omitempty"`
	NewPayment  *float64 `json:"newPayment,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
	Value any    `json:"value,omitempty"`
}

func newScheduleResponse(report domain.ScheduleReport) scheduleResponse {
	return scheduleResponse{
		Schedule:            report.Schedule,
		YearlySummary:       report.Summary,
		RecommendedMaxMonth: report.RecommendedMaxMonth,
		EarlyRepayment:      newOutcomeResponse(report.Outcome),
	}
}

func newCombinedResponse(report domain.CombinedReport) combinedResponse {
	return combinedResponse{
		Commercial:          report.Schedules.Commercial,
		Fund:                report.Schedules.Fund,
		Combined:            report.Schedules.Combined,
		YearlySummary:       report.Summary,
		RecommendedMaxMonth: report.RecommendedMaxMonth,
		EarlyRepayment:      newOutcomeResponse(report.Outcome),
	}
}

func newOutcomeResponse(outcome *domain.EarlyRepaymentOutcome) *outcomeResponse {
	if outcome == nil {
		return nil
	}

	effect := effectResponse{Kind: outcome.Effect.EffectKind()}
	switch e := outcome.Effect.(type) {
	case domain.ShortenedTerm:
		effect.SavedMonths = &e.SavedMonths
	case domain.PaidOff:
		effect.SavedMonths = &e.SavedMonths
	case domain.ReducedPayment:
		effect.NewPayment = &e.NewPayment
	}

	return &outcomeResponse{
		Original:        outcome.Original,
		AfterRepayment:  outcome.AfterRepayment,
		RepaymentAmount: outcome.RepaymentAmount,
		SavedInterest:   outcome.SavedInterest,
		Effect:          effect,
	}
}

// encodeJSON encodes into a buffer first so a failed encode never leaves a
// half-written response.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeBody(w http.ResponseWriter, status int, body []byte, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Warn("error writing response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, resp errorResponse, logger *slog.Logger) {
	body, err := encodeJSON(resp)
	if err != nil {
		http.Error(w, resp.Error, status)
		return
	}
	writeBody(w, status, body, logger)
}

// writeCalculationError reports engine rejections as 422 with the
// offending field, anything else as 500.
func writeCalculationError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var calcErr *domain.CalculationError
	if errors.As(err, &calcErr) {
		writeError(w, http.StatusUnprocessableEntity, errorResponse{
			Error: err.Error(),
			Kind:  string(calcErr.Kind),
			Field: calcErr.Field,
			Value: calcErr.Value,
		}, logger)
		return
	}

	logger.Error("calculation failed", "error", err)
	writeError(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"}, logger)
}
