// Package loan computes equated monthly installments (EMI) and the
// amortization schedule of a fixed rate loan.
package loan

import (
	"fmt"
	"math"

	"github.com/etnz/cashflow"
	"github.com/shopspring/decimal"
)

// interestPlaces bounds the digits kept on monthly interests so that they do not grow month after month.
const interestPlaces = 10

var twelve = decimal.NewFromInt(12)

// Loan is a fixed rate loan repaid in equal monthly installments.
type Loan struct {
	Principal  decimal.Decimal
	AnnualRate cashflow.Percent // nominal yearly rate, compounded monthly
	Months     int
	Currency   string // optional ISO 4217 code, used to format amounts
}

// Validate returns an error wrapping cashflow.ErrConfiguration if l cannot be amortized.
func (l Loan) Validate() error {
	if !l.Principal.IsPositive() {
		return fmt.Errorf("%w: loan amount must be positive, got %v", cashflow.ErrConfiguration, l.Principal)
	}
	if l.Months < 1 {
		return fmt.Errorf("%w: loan tenure must be at least one month, got %d", cashflow.ErrConfiguration, l.Months)
	}
	if math.IsNaN(float64(l.AnnualRate)) || math.IsInf(float64(l.AnnualRate), 0) {
		return fmt.Errorf("%w: loan interest rate must be finite, got %v", cashflow.ErrConfiguration, l.AnnualRate)
	}
	if l.AnnualRate < 0 {
		return fmt.Errorf("%w: loan interest rate cannot be negative, got %v", cashflow.ErrConfiguration, l.AnnualRate)
	}
	return nil
}

// monthlyRate returns the monthly interest rate as a fraction.
func (l Loan) monthlyRate() decimal.Decimal {
	return decimal.NewFromFloat(l.AnnualRate.Rate()).Div(twelve)
}

// EMI returns the equated monthly installment:
//
//	P · r^n · (r−1) / (r^n − 1)
//
// with r = 1 + monthly rate and n the number of months, or P/n at a zero rate.
func (l Loan) EMI() (cashflow.Money, error) {
	if err := l.Validate(); err != nil {
		return cashflow.Money{}, err
	}
	n := decimal.NewFromInt(int64(l.Months))
	monthly := l.monthlyRate()
	if monthly.IsZero() {
		return cashflow.M(l.Principal.Div(n), l.Currency), nil
	}
	r := decimal.NewFromInt(1).Add(monthly)
	rn := r.Pow(n)
	emi := l.Principal.Mul(rn).Mul(monthly).Div(rn.Sub(decimal.NewFromInt(1)))
	return cashflow.M(emi, l.Currency), nil
}

// Installment is one monthly payment of a schedule.
type Installment struct {
	Number    int // 1-based
	Year      int // 0-based year of the loan
	Month     int // 0-based month within Year
	Interest  cashflow.Money
	Principal cashflow.Money // part of the installment repaying the principal
	Paid      cashflow.Money // cumulated installments paid so far
	Balance   cashflow.Money // principal left after this installment
}

// Schedule is the full amortization of a Loan.
type Schedule struct {
	Loan          Loan
	EMI           cashflow.Money
	Installments  []Installment
	TotalInterest cashflow.Money
	TotalPaid     cashflow.Money
}

// Amortize returns the month by month schedule of l.
func (l Loan) Amortize() (*Schedule, error) {
	emi, err := l.EMI()
	if err != nil {
		return nil, err
	}
	monthly := l.monthlyRate()

	s := &Schedule{
		Loan:          l,
		EMI:           emi,
		Installments:  make([]Installment, 0, l.Months),
		TotalInterest: cashflow.M(0, l.Currency),
		TotalPaid:     cashflow.M(0, l.Currency),
	}
	balance := cashflow.M(l.Principal, l.Currency)
	for i := range l.Months {
		interest := cashflow.M(balance.Decimal().Mul(monthly).Round(interestPlaces), l.Currency)
		principal := emi.Sub(interest)
		balance = balance.Sub(principal)
		s.TotalInterest = s.TotalInterest.Add(interest)
		s.TotalPaid = s.TotalPaid.Add(emi)
		s.Installments = append(s.Installments, Installment{
			Number:    i + 1,
			Year:      i / 12,
			Month:     i % 12,
			Interest:  interest,
			Principal: principal,
			Paid:      s.TotalPaid,
			Balance:   balance,
		})
	}
	return s, nil
}

// Flows returns the schedule as cashflows from the borrower's point of view:
// the principal received at time zero, then each installment paid, one
// twelfth of a year apart. Its XIRR is the loan's effective yearly rate.
func (s *Schedule) Flows() (cashflow.Series, error) {
	flows := make([]cashflow.Flow, 0, len(s.Installments)+1)
	flows = append(flows, cashflow.Flow{Time: 0, Amount: s.Loan.Principal.InexactFloat64()})
	for _, in := range s.Installments {
		flows = append(flows, cashflow.Flow{Time: float64(in.Number) / 12, Amount: s.EMI.Neg().Decimal().InexactFloat64()})
	}
	return cashflow.NewSeries(flows...)
}
