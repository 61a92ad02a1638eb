package domain

type RepaymentPolicy string

const (
	ShortenTerm   RepaymentPolicy = "shorten_term"   // keep the payment, cut the term
	ReducePayment RepaymentPolicy = "reduce_payment" // keep the term, cut the payment
)

// RateOption selects the rate used when a combined loan is prepaid as a
// single loan.
type RateOption string

const (
	RateWeighted   RateOption = "weighted"
	RateCommercial RateOption = "commercial"
	RateFund       RateOption = "fund"
)

// RecommendedRepaymentShare bounds the repayment month callers should offer.
const RecommendedRepaymentShare = 0.8

type EarlyRepaymentEvent struct {
	Month  int             `json:"repaymentMonth"`
	Amount float64         `json:"repaymentAmount" validate:"gte=0.01,lte=1000000000"`
	Policy RepaymentPolicy `json:"policy" validate:"oneof=shorten_term reduce_payment"`
}

// MaxRecommendedRepaymentMonth returns the last month a caller should offer
// for a prepayment on a loan of totalPeriods months. The engine accepts any
// month strictly inside the schedule.
func MaxRecommendedRepaymentMonth(totalPeriods int) int {
	return int(float64(totalPeriods) * RecommendedRepaymentShare)
}

// RepaymentEffect is one of ShortenedTerm, ReducedPayment or PaidOff.
type RepaymentEffect interface {
	EffectKind() string
	isRepaymentEffect()
}

type ShortenedTerm struct {
	SavedMonths int `json:"savedMonths"`
}

type ReducedPayment struct {
	NewPayment float64 `json:"newPayment"`
}

// PaidOff means the lump sum retired the whole remaining balance.
type PaidOff struct {
	SavedMonths int `json:"savedMonths"`
}

func (ShortenedTerm) EffectKind() string  { return "shortened_term" }
func (ReducedPayment) EffectKind() string { return "reduced_payment" }
func (PaidOff) EffectKind() string        { return "paid_off" }

func (ShortenedTerm) isRepaymentEffect()  {}
func (ReducedPayment) isRepaymentEffect() {}
func (PaidOff) isRepaymentEffect()        {}

type EarlyRepaymentOutcome struct {
	Original        Schedule
	AfterRepayment  Schedule
	RepaymentAmount float64
	SavedInterest   float64
	Effect          RepaymentEffect
}

// SavedMonths returns the months cut from the loan, 0 under ReducedPayment.
func (o EarlyRepaymentOutcome) SavedMonths() int {
	switch e := o.Effect.(type) {
	case ShortenedTerm:
		return e.SavedMonths
	case PaidOff:
		return e.SavedMonths
	}
	return 0
}

// NewMonthlyPayment returns the recomputed payment, 0 unless ReducedPayment.
func (o EarlyRepaymentOutcome) NewMonthlyPayment() float64 {
	if e, ok := o.Effect.(ReducedPayment); ok {
		return e.NewPayment
	}
	return 0
}
