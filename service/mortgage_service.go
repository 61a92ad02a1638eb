package service

import (
	"fmt"
	"log/slog"
	"slices"

	"mortgage-planner/domain"
)

type MortgageService struct {
	logger *slog.Logger
}

// NewMortgageService creates a new MortgageService. A nil logger discards
// output.
func NewMortgageService(logger *slog.Logger) *MortgageService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MortgageService{logger: logger.With("component", "mortgage")}
}

// CalculateSchedule generates the schedule of a single loan, its yearly
// interest summary and, when requested, the effect of a prepayment.
func (s *MortgageService) CalculateSchedule(
	req domain.ScheduleRequest,
) (domain.ScheduleReport, error) {

	schedule, err := GenerateSchedule(req.LoanSpec)
	if err != nil {
		return domain.ScheduleReport{}, err
	}

	report := domain.ScheduleReport{
		Schedule:            schedule,
		Summary:             slices.Collect(YearlySummary(schedule, schedule.TotalInterest)),
		RecommendedMaxMonth: domain.MaxRecommendedRepaymentMonth(schedule.Len()),
	}

	if req.EarlyRepayment != nil {
		outcome, err := ApplyEarlyRepayment(req.LoanSpec, schedule, *req.EarlyRepayment)
		if err != nil {
			return domain.ScheduleReport{}, fmt.Errorf("early repayment: %w", err)
		}
		report.Outcome = &outcome
		s.logOutcome(outcome)
	}

	s.logger.Debug("schedule calculated",
		"principal", req.Principal,
		"method", req.Method,
		"periods", schedule.Len(),
	)
	return report, nil
}

// CalculateCombined generates the commercial, fund and combined schedules
// and, when requested, the effect of a prepayment on the combined loan.
func (s *MortgageService) CalculateCombined(
	req domain.CombinedRequest,
) (domain.CombinedReport, error) {

	schedules, err := CombineLoans(req.CombinedLoanSpec)
	if err != nil {
		return domain.CombinedReport{}, err
	}

	combined := schedules.Combined
	report := domain.CombinedReport{
		Schedules:           schedules,
		Summary:             slices.Collect(YearlySummary(combined, combined.TotalInterest)),
		RecommendedMaxMonth: domain.MaxRecommendedRepaymentMonth(combined.Len()),
	}

	if req.EarlyRepayment != nil {
		outcome, err := ApplyCombinedEarlyRepayment(req.CombinedLoanSpec, *req.EarlyRepayment, req.RateOption)
		if err != nil {
			return domain.CombinedReport{}, fmt.Errorf("early repayment: %w", err)
		}
		report.Outcome = &outcome
		s.logOutcome(outcome)
	}

	s.logger.Debug("combined schedule calculated",
		"commercial_principal", req.CommercialPrincipal,
		"fund_principal", req.FundPrincipal,
		"periods", combined.Len(),
	)
	return report, nil
}

func (s *MortgageService) logOutcome(outcome domain.EarlyRepaymentOutcome) {
	s.logger.Debug("early repayment applied",
		"effect", outcome.Effect.EffectKind(),
		"amount", outcome.RepaymentAmount,
		"saved_interest", outcome.SavedInterest,
		"periods_after", outcome.AfterRepayment.Len(),
	)
}
