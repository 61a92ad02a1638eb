package service

import (
	"fmt"

	"mortgage-planner/domain"
)

// CombineLoans amortizes the commercial and fund loans independently and
// sums them period by period.
func CombineLoans(spec domain.CombinedLoanSpec) (domain.CombinedSchedule, error) {
	if err := ValidateCombinedLoanSpec(spec); err != nil {
		return domain.CombinedSchedule{}, err
	}

	commercial, err := GenerateSchedule(spec.Commercial())
	if err != nil {
		return domain.CombinedSchedule{}, fmt.Errorf("commercial loan: %w", err)
	}
	fund, err := GenerateSchedule(spec.Fund())
	if err != nil {
		return domain.CombinedSchedule{}, fmt.Errorf("fund loan: %w", err)
	}

	combined, err := SumSchedules(commercial, fund)
	if err != nil {
		return domain.CombinedSchedule{}, err
	}

	return domain.CombinedSchedule{
		Commercial: commercial,
		Fund:       fund,
		Combined:   combined,
	}, nil
}

// SumSchedules adds two schedules of equal length index for index.
func SumSchedules(a, b domain.Schedule) (domain.Schedule, error) {
	if a.Len() != b.Len() {
		return domain.Schedule{}, domain.NewCalculationError(
			domain.KindSchedulesLengthMismatch,
			"fund.periods",
			b.Len(),
			fmt.Sprintf("expected %d periods to match the commercial schedule", a.Len()),
		)
	}

	periods := make([]domain.PaymentPeriod, a.Len())
	for i := range a.Periods {
		pa, pb := a.Periods[i], b.Periods[i]
		periods[i] = domain.PaymentPeriod{
			Month:              i + 1,
			TotalPayment:       pa.TotalPayment + pb.TotalPayment,
			Principal:          pa.Principal + pb.Principal,
			Interest:           pa.Interest + pb.Interest,
			RemainingPrincipal: pa.RemainingPrincipal + pb.RemainingPrincipal,
		}
	}
	return newSchedule(periods, 0), nil
}

// EffectiveRate returns the annual rate used to treat a combined loan as a
// single loan.
func EffectiveRate(spec domain.CombinedLoanSpec, option domain.RateOption) (float64, error) {
	switch option {
	case domain.RateWeighted, "":
		total := spec.CommercialPrincipal + spec.FundPrincipal
		return (spec.CommercialRate*spec.CommercialPrincipal + spec.FundRate*spec.FundPrincipal) / total, nil
	case domain.RateCommercial:
		return spec.CommercialRate, nil
	case domain.RateFund:
		return spec.FundRate, nil
	}
	return 0, domain.NewCalculationError(
		domain.KindInvalidRepaymentEvent,
		"rateOption",
		option,
		"must be one of: weighted, commercial, fund",
	)
}
