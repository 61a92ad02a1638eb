package service

import (
	"math"
	"testing"

	"mortgage-planner/domain"
)

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func mustSchedule(t *testing.T, spec domain.LoanSpec) domain.Schedule {
	t.Helper()
	schedule, err := GenerateSchedule(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return schedule
}

func sumPrincipal(periods []domain.PaymentPeriod) float64 {
	total := 0.0
	for _, p := range periods {
		total += p.Principal
	}
	return total
}

func assertContiguous(t *testing.T, periods []domain.PaymentPeriod) {
	t.Helper()
	for i, p := range periods {
		if p.Month != i+1 {
			t.Fatalf("expected month %d at index %d, got %d", i+1, i, p.Month)
		}
	}
}

func assertNonIncreasingBalance(t *testing.T, periods []domain.PaymentPeriod) {
	t.Helper()
	for i := 1; i < len(periods); i++ {
		if periods[i].RemainingPrincipal > periods[i-1].RemainingPrincipal {
			t.Fatalf("remaining principal increased at month %d: %.6f > %.6f",
				periods[i].Month, periods[i].RemainingPrincipal, periods[i-1].RemainingPrincipal)
		}
	}
}

var mortgage30y = domain.LoanSpec{
	Principal:    1_000_000,
	InterestRate: 5.0,
	TermYears:    30,
	Method:       domain.LevelPayment,
}
