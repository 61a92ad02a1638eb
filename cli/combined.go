package cli

import (
	"github.com/spf13/cobra"

	"mortgage-planner/domain"
	"mortgage-planner/service"
)

func newCombinedCmd(a *app) *cobra.Command {
	var (
		spec        domain.CombinedLoanSpec
		method      string
		rateOption  string
		repay       repaymentFlags
		showPeriods bool
	)

	cmd := &cobra.Command{
		Use:   "combined",
		Short: "Compute a combined commercial + fund loan",
		Example: `  mortgage-planner combined --commercial 600000 --commercial-rate 4.9 --fund 400000 --fund-rate 3.25 --years 30
  mortgage-planner combined --commercial 600000 --commercial-rate 4.9 --fund 400000 --fund-rate 3.25 --repay-month 24 --repay-amount 100000 --rate-option weighted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec.Method = domain.RepaymentMethod(method)
			req := domain.CombinedRequest{
				CombinedLoanSpec: spec,
				EarlyRepayment:   repay.event(cmd),
				RateOption:       domain.RateOption(rateOption),
			}

			report, err := service.NewMortgageService(a.logger).CalculateCombined(req)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			p.schedule("Commercial loan", report.Schedules.Commercial)
			p.schedule("Fund loan", report.Schedules.Fund)
			p.schedule("Combined", report.Schedules.Combined)
			p.summary(report.Summary)
			p.outcome(req.EarlyRepayment, report.RecommendedMaxMonth, report.Outcome)
			if showPeriods {
				p.periods(finalSchedule(report.Schedules.Combined, report.Outcome))
			}
			return p.err
		},
	}

	cmd.Flags().Float64Var(&spec.CommercialPrincipal, "commercial", 0, "commercial loan principal")
	cmd.Flags().Float64Var(&spec.CommercialRate, "commercial-rate", 0, "commercial annual rate in percent")
	cmd.Flags().Float64Var(&spec.FundPrincipal, "fund", 0, "fund loan principal")
	cmd.Flags().Float64Var(&spec.FundRate, "fund-rate", 0, "fund annual rate in percent")
	cmd.Flags().IntVar(&spec.TermYears, "years", 30, "shared term in years")
	cmd.Flags().StringVar(&method, "method", string(domain.LevelPayment), "repayment method: level_payment or level_principal")
	cmd.Flags().StringVar(&rateOption, "rate-option", string(domain.RateWeighted), "rate for early repayment: weighted, commercial or fund")
	cmd.Flags().BoolVar(&showPeriods, "periods", false, "print every period")
	repay.register(cmd)
	cmd.MarkFlagRequired("commercial")
	cmd.MarkFlagRequired("fund")
	return cmd
}
