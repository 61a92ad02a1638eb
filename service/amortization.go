package service

import (
	"math"

	"mortgage-planner/domain"
)

// GenerateSchedule builds the full monthly schedule of a loan under its
// repayment convention.
func GenerateSchedule(spec domain.LoanSpec) (domain.Schedule, error) {
	if err := ValidateLoanSpec(spec); err != nil {
		return domain.Schedule{}, err
	}

	periods := amortize(spec.Principal, spec.MonthlyRate(), spec.TotalPeriods(), spec.Method)
	return newSchedule(periods, 0), nil
}

// LevelPayment returns the constant installment that retires principal in
// n periods at the periodic rate r.
func LevelPayment(principal, r float64, n int) float64 {
	if r == 0 {
		return principal / float64(n)
	}
	// M = P·r·(1+r)^n / ((1+r)^n − 1), escrito como P·r / (1 − (1+r)^−n)
	return principal * r / -math.Expm1(-float64(n)*math.Log1p(r))
}

func amortize(principal, r float64, n int, method domain.RepaymentMethod) []domain.PaymentPeriod {
	if method == domain.LevelPrincipal {
		return levelPrincipalPeriods(principal, r, n)
	}
	return levelPaymentPeriods(principal, r, n)
}

func levelPaymentPeriods(principal, r float64, n int) []domain.PaymentPeriod {
	payment := LevelPayment(principal, r, n)
	periods := make([]domain.PaymentPeriod, 0, n)
	balance := principal

	for month := 1; month <= n; month++ {
		interest := balance * r
		principalPart := payment - interest
		balance -= principalPart

		periods = append(periods, domain.PaymentPeriod{
			Month:              month,
			TotalPayment:       payment,
			Principal:          principalPart,
			Interest:           interest,
			RemainingPrincipal: math.Max(0, balance),
		})
	}
	return periods
}

func levelPrincipalPeriods(principal, r float64, n int) []domain.PaymentPeriod {
	share := principal / float64(n)
	periods := make([]domain.PaymentPeriod, 0, n)
	balance := principal

	for month := 1; month <= n; month++ {
		interest := balance * r
		balance -= share

		periods = append(periods, domain.PaymentPeriod{
			Month:              month,
			TotalPayment:       share + interest,
			Principal:          share,
			Interest:           interest,
			RemainingPrincipal: math.Max(0, balance),
		})
	}
	return periods
}

// newSchedule derives the aggregates by summing the periods. lumpSum is a
// one-time payment made outside the periods and counts towards TotalPayment.
func newSchedule(periods []domain.PaymentPeriod, lumpSum float64) domain.Schedule {
	schedule := domain.Schedule{Periods: periods}
	if len(periods) == 0 {
		schedule.TotalPayment = lumpSum
		return schedule
	}

	for _, p := range periods {
		schedule.TotalInterest += p.Interest
		schedule.TotalPayment += p.TotalPayment
	}
	schedule.TotalPayment += lumpSum
	schedule.FirstMonthPayment = periods[0].TotalPayment
	schedule.LastMonthPayment = periods[len(periods)-1].TotalPayment
	return schedule
}
