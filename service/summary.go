package service

import (
	"iter"

	"mortgage-planner/domain"
)

// YearlySummary folds the schedule into per-year interest figures for at
// most MaxSummaryYears years, stopping early when the schedule ends. The
// sequence can be ranged over any number of times.
func YearlySummary(schedule domain.Schedule, totalInterest float64) iter.Seq[domain.YearSummary] {
	return func(yield func(domain.YearSummary) bool) {
		periods := schedule.Periods
		cumulative := 0.0

		for year := 1; year <= MaxSummaryYears; year++ {
			start := (year - 1) * domain.MonthsPerYear
			if start >= len(periods) {
				return
			}
			end := min(year*domain.MonthsPerYear, len(periods))

			yearly := 0.0
			for _, p := range periods[start:end] {
				yearly += p.Interest
			}
			cumulative += yearly

			percentage := 0.0
			if totalInterest > 0 {
				percentage = cumulative / totalInterest * 100
			}

			if !yield(domain.YearSummary{
				Year:               year,
				YearlyInterest:     yearly,
				CumulativeInterest: cumulative,
				InterestPercentage: percentage,
			}) {
				return
			}
		}
	}
}
