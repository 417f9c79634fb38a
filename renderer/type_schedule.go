package renderer

import (
	"fmt"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/loan"
)

// Schedule is the view of a loan amortization schedule.
type Schedule struct {
	Amount        string
	Rate          string
	Tenure        string
	EMI           string
	TotalInterest string
	TotalPaid     string
	Installments  []InstallmentRow
}

// InstallmentRow is one monthly installment of a Schedule.
type InstallmentRow struct {
	Number    int
	Year      int
	Month     int
	Interest  string
	Principal string
	Paid      string
	Balance   string
}

// NewSchedule builds the view of s.
func NewSchedule(s *loan.Schedule) *Schedule {
	l := s.Loan
	v := &Schedule{
		Amount:        cashflow.M(l.Principal, l.Currency).String(),
		Rate:          l.AnnualRate.String(),
		Tenure:        tenure(l.Months),
		EMI:           s.EMI.String(),
		TotalInterest: s.TotalInterest.String(),
		TotalPaid:     s.TotalPaid.String(),
	}
	for _, in := range s.Installments {
		v.Installments = append(v.Installments, InstallmentRow{
			Number:    in.Number,
			Year:      in.Year,
			Month:     in.Month,
			Interest:  in.Interest.String(),
			Principal: in.Principal.String(),
			Paid:      in.Paid.String(),
			Balance:   in.Balance.String(),
		})
	}
	return v
}

func tenure(months int) string {
	switch {
	case months == 12:
		return "1 year"
	case months%12 == 0:
		return fmt.Sprintf("%d years", months/12)
	case months == 1:
		return "1 month"
	default:
		return fmt.Sprintf("%d months", months)
	}
}
