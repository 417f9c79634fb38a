package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cashflow/loan"
)

// ScheduleText renders s as a fixed width plain text table followed by its summary.
func ScheduleText(s *loan.Schedule, summaryOnly bool) string {
	var b strings.Builder
	if !summaryOnly {
		fmt.Fprintf(&b, "%5s %3s %3s %10s %10s %12s %12s\n", "SNo", "Yr", "Mo", "Int", "Pr", "T Paid", "Left")
		for _, in := range s.Installments {
			fmt.Fprintf(&b, "%4d> %3d %3d %10s %10s %12s %12s\n",
				in.Number, in.Year, in.Month,
				in.Interest.Fixed(2), in.Principal.Fixed(2), in.Paid.Fixed(2), in.Balance.Fixed(2))
		}
	}
	l := s.Loan
	fmt.Fprintf(&b, "Loan Amount: %s\n", l.Principal.StringFixed(2))
	fmt.Fprintf(&b, "Yearly interest: %s\n", l.AnnualRate)
	fmt.Fprintf(&b, "Loan Tenure: %s\n", tenure(l.Months))
	fmt.Fprintf(&b, "Monthly EMI: %s\n", s.EMI.Fixed(2))
	fmt.Fprintf(&b, "Total Interest Paid: %s\n", s.TotalInterest.Fixed(2))
	return b.String()
}
