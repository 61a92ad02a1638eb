package service

import (
	"fmt"
	"math"
	"slices"

	"mortgage-planner/domain"
)

// ApplyEarlyRepayment recomputes schedule after a lump-sum prepayment made in
// event.Month. Periods up to and including that month are kept as they are;
// the rest is rebuilt from the reduced balance at the loan's original rate.
//
// The month must lie strictly inside the schedule: prepaying in the last
// period is rejected with RepaymentMonthOutOfRange. ShortenTerm is only
// defined for level-payment loans and never yields more periods than the
// original schedule.
//
// ReducePayment re-amortizes the balance over exactly the months left in
// the original term, not over whole years truncated afterwards, so the
// final regenerated period always retires the balance.
func ApplyEarlyRepayment(
	spec domain.LoanSpec,
	schedule domain.Schedule,
	event domain.EarlyRepaymentEvent,
) (domain.EarlyRepaymentOutcome, error) {

	if err := ValidateLoanSpec(spec); err != nil {
		return domain.EarlyRepaymentOutcome{}, err
	}
	if err := ValidateEvent(event); err != nil {
		return domain.EarlyRepaymentOutcome{}, err
	}
	if event.Policy == domain.ShortenTerm && spec.Method != domain.LevelPayment {
		return domain.EarlyRepaymentOutcome{}, domain.NewCalculationError(
			domain.KindUnsupportedPolicyForConvention,
			"policy",
			event.Policy,
			fmt.Sprintf("%s requires a %s loan, got %s", domain.ShortenTerm, domain.LevelPayment, spec.Method),
		)
	}

	total := schedule.Len()
	if event.Month < 1 || event.Month >= total {
		return domain.EarlyRepaymentOutcome{}, domain.NewCalculationError(
			domain.KindRepaymentMonthOutOfRange,
			"repaymentMonth",
			event.Month,
			fmt.Sprintf("must be between 1 and %d", total-1),
		)
	}

	prefix := slices.Clone(schedule.Periods[:event.Month])
	current := prefix[len(prefix)-1]
	balance := math.Max(0, current.RemainingPrincipal-event.Amount)
	r := spec.MonthlyRate()
	remaining := total - event.Month

	var (
		tail   []domain.PaymentPeriod
		effect domain.RepaymentEffect
	)

	switch {
	case balance <= 0:
		effect = domain.PaidOff{SavedMonths: remaining}

	case event.Policy == domain.ShortenTerm:
		// La cuota vigente en el mes del prepago se mantiene
		var err error
		tail, err = shortenTerm(balance, r, current.TotalPayment, remaining)
		if err != nil {
			return domain.EarlyRepaymentOutcome{}, err
		}
		effect = domain.ShortenedTerm{SavedMonths: total - (event.Month + len(tail))}

	default:
		tail = amortize(balance, r, remaining, spec.Method)
		effect = domain.ReducedPayment{NewPayment: tail[0].TotalPayment}
	}

	for i := range tail {
		tail[i].Month = event.Month + i + 1
	}
	after := newSchedule(append(prefix, tail...), event.Amount)

	return domain.EarlyRepaymentOutcome{
		Original:        schedule,
		AfterRepayment:  after,
		RepaymentAmount: event.Amount,
		SavedInterest:   savedInterest(schedule.Periods[event.Month:], tail),
		Effect:          effect,
	}, nil
}

// ApplyCombinedEarlyRepayment prepays a combined loan as one loan of the
// summed principal at the rate picked by option.
func ApplyCombinedEarlyRepayment(
	spec domain.CombinedLoanSpec,
	event domain.EarlyRepaymentEvent,
	option domain.RateOption,
) (domain.EarlyRepaymentOutcome, error) {

	if err := ValidateCombinedLoanSpec(spec); err != nil {
		return domain.EarlyRepaymentOutcome{}, err
	}
	rate, err := EffectiveRate(spec, option)
	if err != nil {
		return domain.EarlyRepaymentOutcome{}, err
	}

	single := domain.LoanSpec{
		Principal:    spec.CommercialPrincipal + spec.FundPrincipal,
		InterestRate: rate,
		TermYears:    spec.TermYears,
		Method:       spec.Method,
	}
	schedule, err := GenerateSchedule(single)
	if err != nil {
		return domain.EarlyRepaymentOutcome{}, fmt.Errorf("combined loan: %w", err)
	}
	return ApplyEarlyRepayment(single, schedule, event)
}

// savedInterest compares the interest of the replaced periods only; the
// shared prefix cancels out. A prepayment at the loan's own rate never adds
// interest, so a negative rounding residue is reported as 0.
func savedInterest(replaced, tail []domain.PaymentPeriod) float64 {
	saved := 0.0
	for _, p := range replaced {
		saved += p.Interest
	}
	for _, p := range tail {
		saved -= p.Interest
	}
	return math.Max(0, saved)
}

// shortenTerm amortizes balance with a fixed payment until it is retired,
// in at most maxPeriods periods. The last period pays exactly the residual
// balance plus its interest.
func shortenTerm(balance, r, payment float64, maxPeriods int) ([]domain.PaymentPeriod, error) {
	n, err := periodsToRetire(balance, r, payment)
	if err != nil {
		return nil, err
	}
	n = min(n, maxPeriods)

	periods := make([]domain.PaymentPeriod, 0, n)
	for i := 1; i <= n; i++ {
		interest := balance * r
		principalPart := payment - interest

		if i == n || principalPart >= balance-payoffTolerance {
			periods = append(periods, domain.PaymentPeriod{
				TotalPayment: balance + interest,
				Principal:    balance,
				Interest:     interest,
			})
			break
		}

		balance -= principalPart
		periods = append(periods, domain.PaymentPeriod{
			TotalPayment:       payment,
			Principal:          principalPart,
			Interest:           interest,
			RemainingPrincipal: balance,
		})
	}
	return periods, nil
}

// periodsToRetire inverts the annuity formula:
// n = ceil(−ln(1 − B·r/M) / ln(1+r)), or ceil(B/M) without interest.
func periodsToRetire(balance, r, payment float64) (int, error) {
	if r == 0 {
		return max(1, int(math.Ceil(balance/payment))), nil
	}

	x := balance * r / payment
	if x >= 1 {
		return 0, domain.NewCalculationError(
			domain.KindInvalidRepaymentEvent,
			"policy",
			domain.ShortenTerm,
			fmt.Sprintf("payment %.2f does not cover the monthly interest on %.2f", payment, balance),
		)
	}

	n := -math.Log1p(-x) / math.Log1p(r)
	// absorber ruido de punto flotante cuando n es casi entero
	return max(1, int(math.Ceil(n-1e-9))), nil
}
