package domain

// ScheduleRequest is a single loan with an optional prepayment.
type ScheduleRequest struct {
	LoanSpec
	EarlyRepayment *EarlyRepaymentEvent `json:"earlyRepayment,omitempty"`
}

// CombinedRequest is a combined loan with an optional prepayment. The
// prepayment is applied to the combined loan as a single loan at the rate
// selected by RateOption (weighted when empty).
type CombinedRequest struct {
	CombinedLoanSpec
	EarlyRepayment *EarlyRepaymentEvent `json:"earlyRepayment,omitempty"`
	RateOption     RateOption           `json:"rateOption,omitempty"`
}

type ScheduleReport struct {
	Schedule            Schedule
	Summary             []YearSummary
	RecommendedMaxMonth int
	Outcome             *EarlyRepaymentOutcome
}

type CombinedReport struct {
	Schedules           CombinedSchedule
	Summary             []YearSummary
	RecommendedMaxMonth int
	Outcome             *EarlyRepaymentOutcome
}
