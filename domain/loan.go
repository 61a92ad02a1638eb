package domain

// RepaymentMethod is the repayment convention of a loan.
type RepaymentMethod string

const (
	LevelPayment   RepaymentMethod = "level_payment"   // equal installment
	LevelPrincipal RepaymentMethod = "level_principal" // equal principal
)

const MonthsPerYear = 12

type LoanSpec struct {
	Principal    float64         `json:"principal" validate:"gt=0,lte=1000000000"`
	InterestRate float64         `json:"interestRate" validate:"gte=0,lte=100"` // annual, percent
	TermYears    int             `json:"termYears" validate:"gt=0,lte=50"`
	Method       RepaymentMethod `json:"method" validate:"oneof=level_payment level_principal"`
}

// MonthlyRate returns the periodic rate as a fraction.
func (s LoanSpec) MonthlyRate() float64 {
	return s.InterestRate / 100 / MonthsPerYear
}

func (s LoanSpec) TotalPeriods() int {
	return s.TermYears * MonthsPerYear
}

type PaymentPeriod struct {
	Month              int     `json:"month"`
	TotalPayment       float64 `json:"totalPayment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	RemainingPrincipal float64 `json:"remainingPrincipal"`
}

type Schedule struct {
	Periods           []PaymentPeriod `json:"periods"`
	TotalInterest     float64         `json:"totalInterest"`
	TotalPayment      float64         `json:"totalPayment"`
	FirstMonthPayment float64         `json:"firstMonthPayment"`
	LastMonthPayment  float64         `json:"lastMonthPayment"`
}

// Len returns the number of periods in the schedule.
func (s Schedule) Len() int {
	return len(s.Periods)
}

// CombinedLoanSpec describes a commercial loan and a fund-sourced loan
// amortized in parallel over the same term and convention.
type CombinedLoanSpec struct {
	CommercialPrincipal float64         `json:"commercialPrincipal" validate:"gt=0,lte=1000000000"`
	CommercialRate      float64         `json:"commercialRate" validate:"gte=0,lte=100"`
	FundPrincipal       float64         `json:"fundPrincipal" validate:"gt=0,lte=1000000000"`
	FundRate            float64         `json:"fundRate" validate:"gte=0,lte=100"`
	TermYears           int             `json:"termYears" validate:"gt=0,lte=50"`
	Method              RepaymentMethod `json:"method" validate:"oneof=level_payment level_principal"`
}

func (c CombinedLoanSpec) Commercial() LoanSpec {
	return LoanSpec{
		Principal:    c.CommercialPrincipal,
		InterestRate: c.CommercialRate,
		TermYears:    c.TermYears,
		Method:       c.Method,
	}
}

func (c CombinedLoanSpec) Fund() LoanSpec {
	return LoanSpec{
		Principal:    c.FundPrincipal,
		InterestRate: c.FundRate,
		TermYears:    c.TermYears,
		Method:       c.Method,
	}
}

type CombinedSchedule struct {
	Commercial Schedule `json:"commercial"`
	Fund       Schedule `json:"fund"`
	Combined   Schedule `json:"combined"`
}

// YearSummary is the interest accumulated in one loan year.
type YearSummary struct {
	Year               int     `json:"year"`
	YearlyInterest     float64 `json:"yearlyInterest"`
	CumulativeInterest float64 `json:"cumulativeInterest"`
	InterestPercentage float64 `json:"interestPercentage"`
}
