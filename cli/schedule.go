package cli

import (
	"github.com/spf13/cobra"

	"mortgage-planner/domain"
	"mortgage-planner/service"
)

func newScheduleCmd(a *app) *cobra.Command {
	var (
		spec        domain.LoanSpec
		method      string
		repay       repaymentFlags
		showPeriods bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute the schedule of a single loan",
		Example: `  mortgage-planner schedule --principal 1000000 --rate 5 --years 30
  mortgage-planner schedule --principal 1000000 --rate 5 --years 30 --repay-month 60 --repay-amount 200000 --policy shorten_term`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec.Method = domain.RepaymentMethod(method)
			req := domain.ScheduleRequest{LoanSpec: spec, EarlyRepayment: repay.event(cmd)}

			report, err := service.NewMortgageService(a.logger).CalculateSchedule(req)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			p.schedule("Loan", report.Schedule)
			p.summary(report.Summary)
			p.outcome(req.EarlyRepayment, report.RecommendedMaxMonth, report.Outcome)
			if showPeriods {
				p.periods(finalSchedule(report.Schedule, report.Outcome))
			}
			return p.err
		},
	}

	cmd.Flags().Float64Var(&spec.Principal, "principal", 0, "loan principal")
	cmd.Flags().Float64Var(&spec.InterestRate, "rate", 0, "annual interest rate in percent")
	cmd.Flags().IntVar(&spec.TermYears, "years", 30, "term in years")
	cmd.Flags().StringVar(&method, "method", string(domain.LevelPayment), "repayment method: level_payment or level_principal")
	cmd.Flags().BoolVar(&showPeriods, "periods", false, "print every period")
	repay.register(cmd)
	cmd.MarkFlagRequired("principal")
	return cmd
}

func finalSchedule(schedule domain.Schedule, outcome *domain.EarlyRepaymentOutcome) domain.Schedule {
	if outcome != nil {
		return outcome.AfterRepayment
	}
	return schedule
}
