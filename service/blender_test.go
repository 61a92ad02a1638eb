package service

import (
	"errors"
	"testing"

	"mortgage-planner/domain"
)

var combinedSpec = domain.CombinedLoanSpec{
	CommercialPrincipal: 600000,
	CommercialRate:      4.9,
	FundPrincipal:       400000,
	FundRate:            3.25,
	TermYears:           30,
	Method:              domain.LevelPayment,
}

func TestCombineLoans_SumsPeriodByPeriod(t *testing.T) {
	for _, method := range []domain.RepaymentMethod{domain.LevelPayment, domain.LevelPrincipal} {
		spec := combinedSpec
		spec.Method = method

		result, err := CombineLoans(spec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Commercial.Len() != 360 || result.Fund.Len() != 360 || result.Combined.Len() != 360 {
			t.Fatalf("expected 360 periods in every schedule")
		}

		for k := range result.Combined.Periods {
			c, f, sum := result.Commercial.Periods[k], result.Fund.Periods[k], result.Combined.Periods[k]
			if sum.TotalPayment != c.TotalPayment+f.TotalPayment {
				t.Fatalf("month %d: expected total %.6f, got %.6f", k+1, c.TotalPayment+f.TotalPayment, sum.TotalPayment)
			}
			if sum.Interest != c.Interest+f.Interest || sum.Principal != c.Principal+f.Principal {
				t.Fatalf("month %d: components not summed", k+1)
			}
			if sum.Month != k+1 {
				t.Fatalf("expected month %d, got %d", k+1, sum.Month)
			}
		}

		wantTotal := result.Commercial.TotalPayment + result.Fund.TotalPayment
		if !approxEqual(result.Combined.TotalPayment, wantTotal, 1e-6) {
			t.Errorf("expected combined total %.6f, got %.6f", wantTotal, result.Combined.TotalPayment)
		}
		wantFirst := result.Commercial.FirstMonthPayment + result.Fund.FirstMonthPayment
		if result.Combined.FirstMonthPayment != wantFirst {
			t.Errorf("expected first payment %.6f, got %.6f", wantFirst, result.Combined.FirstMonthPayment)
		}
	}
}

func TestCombineLoans_InvalidSubLoan(t *testing.T) {
	spec := combinedSpec
	spec.FundRate = -1

	_, err := CombineLoans(spec)
	if !errors.Is(err, domain.ErrInvalidLoanSpec) {
		t.Fatalf("expected ErrInvalidLoanSpec, got %v", err)
	}

	var calcErr *domain.CalculationError
	if errors.As(err, &calcErr) && calcErr.Field != "fundRate" {
		t.Errorf("expected field fundRate, got %s", calcErr.Field)
	}
}

func TestCombineLoans_RateTooHighForTerm(t *testing.T) {
	spec := combinedSpec
	spec.CommercialRate = 100

	_, err := CombineLoans(spec)
	if !errors.Is(err, domain.ErrInvalidLoanSpec) {
		t.Fatalf("expected ErrInvalidLoanSpec, got %v", err)
	}

	var calcErr *domain.CalculationError
	if errors.As(err, &calcErr) && calcErr.Field != "commercialRate" {
		t.Errorf("expected field commercialRate, got %s", calcErr.Field)
	}
}

func TestSumSchedules_LengthMismatch(t *testing.T) {
	long := mustSchedule(t, domain.LoanSpec{Principal: 1000, InterestRate: 5, TermYears: 2, Method: domain.LevelPayment})
	short := mustSchedule(t, domain.LoanSpec{Principal: 1000, InterestRate: 5, TermYears: 1, Method: domain.LevelPayment})

	_, err := SumSchedules(long, short)
	if !errors.Is(err, domain.ErrSchedulesLengthMismatch) {
		t.Fatalf("expected ErrSchedulesLengthMismatch, got %v", err)
	}
}

func TestEffectiveRate(t *testing.T) {
	tests := []struct {
		option domain.RateOption
		want   float64
	}{
		{domain.RateWeighted, 4.24},
		{"", 4.24},
		{domain.RateCommercial, 4.9},
		{domain.RateFund, 3.25},
	}

	for _, tt := range tests {
		got, err := EffectiveRate(combinedSpec, tt.option)
		if err != nil {
			t.Fatalf("option %q: unexpected error: %v", tt.option, err)
		}
		if !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("option %q: expected %.4f, got %.10f", tt.option, tt.want, got)
		}
	}

	if _, err := EffectiveRate(combinedSpec, "average"); !errors.Is(err, domain.ErrInvalidRepaymentEvent) {
		t.Errorf("expected ErrInvalidRepaymentEvent for unknown option, got %v", err)
	}
}
