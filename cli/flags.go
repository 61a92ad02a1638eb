package cli

import (
	"github.com/spf13/cobra"

	"mortgage-planner/domain"
)

type repaymentFlags struct {
	month  int
	amount float64
	policy string
}

func (f *repaymentFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.month, "repay-month", 0, "month of the early repayment (1-based)")
	cmd.Flags().Float64Var(&f.amount, "repay-amount", 0, "early repayment amount")
	cmd.Flags().StringVar(&f.policy, "policy", string(domain.ShortenTerm), "repayment policy: shorten_term or reduce_payment")
}

// event returns nil unless one of the repayment flags was given.
func (f *repaymentFlags) event(cmd *cobra.Command) *domain.EarlyRepaymentEvent {
	if !cmd.Flags().Changed("repay-month") && !cmd.Flags().Changed("repay-amount") {
		return nil
	}
	return &domain.EarlyRepaymentEvent{
		Month:  f.month,
		Amount: f.amount,
		Policy: domain.RepaymentPolicy(f.policy),
	}
}
