package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"mortgage-planner/domain"
)

// printer writes reports as aligned text and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) table(write func(tw *tabwriter.Writer)) {
	if p.err != nil {
		return
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	write(tw)
	p.err = tw.Flush()
}

func (p *printer) schedule(title string, s domain.Schedule) {
	p.printf("%s\n", title)
	p.printf("  Periods:        %d\n", s.Len())
	p.printf("  First payment:  %.2f\n", s.FirstMonthPayment)
	p.printf("  Last payment:   %.2f\n", s.LastMonthPayment)
	p.printf("  Total interest: %.2f\n", s.TotalInterest)
	p.printf("  Total payment:  %.2f\n\n", s.TotalPayment)
}

func (p *printer) summary(years []domain.YearSummary) {
	if len(years) == 0 {
		return
	}
	p.printf("Yearly interest\n")
	p.table(func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "Year\tInterest\tCumulative\tShare\t")
		for _, y := range years {
			fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f%%\t\n",
				y.Year, y.YearlyInterest, y.CumulativeInterest, y.InterestPercentage)
		}
	})
	p.printf("\n")
}

func (p *printer) outcome(event *domain.EarlyRepaymentEvent, recommendedMax int, o *domain.EarlyRepaymentOutcome) {
	if event == nil || o == nil {
		return
	}
	if event.Month > recommendedMax {
		p.printf("warning: month %d is past the recommended window (<= %d)\n\n", event.Month, recommendedMax)
	}

	p.printf("Early repayment of %.2f in month %d (%s)\n", o.RepaymentAmount, event.Month, event.Policy)
	p.printf("  Effect:         %s\n", o.Effect.EffectKind())
	switch e := o.Effect.(type) {
	case domain.ShortenedTerm:
		p.printf("  Saved months:   %d\n", e.SavedMonths)
	case domain.PaidOff:
		p.printf("  Saved months:   %d\n", e.SavedMonths)
	case domain.ReducedPayment:
		p.printf("  New payment:    %.2f\n", e.NewPayment)
	}
	p.printf("  Periods:        %d\n", o.AfterRepayment.Len())
	p.printf("  Total interest: %.2f\n", o.AfterRepayment.TotalInterest)
	p.printf("  Total payment:  %.2f\n", o.AfterRepayment.TotalPayment)
	p.printf("  Saved interest: %.2f\n\n", o.SavedInterest)
}

func (p *printer) periods(s domain.Schedule) {
	p.printf("Schedule\n")
	p.table(func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "Month\tPayment\tPrincipal\tInterest\tRemaining\t")
		for _, period := range s.Periods {
			fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
				period.Month, period.TotalPayment, period.Principal, period.Interest, period.RemainingPrincipal)
		}
	})
}
