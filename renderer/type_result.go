package renderer

import (
	"fmt"

	"github.com/etnz/cashflow"
)

// Result is the view of a valuation: the headline result and the cashflows it was computed from.
type Result struct {
	Title    string
	Headline string
	Flows    []FlowRow
}

// FlowRow is one cashflow of a Result.
type FlowRow struct {
	Time   string // fractional year
	Amount string
	Offset string // years between the cashflow and the anchor
}

// NewResult builds the view of res, computed from req.
func NewResult(req cashflow.Request, res cashflow.Result) *Result {
	r := &Result{Headline: res.String()}
	switch req.Mode() {
	case cashflow.XIRR:
		r.Title = "XIRR"
	case cashflow.Present:
		r.Title = "Present Value"
		if pr, ok := req.(cashflow.PresentRequest); ok {
			r.Title += " at " + pr.Rate().String()
		}
	}

	s := req.Series()
	anchor := s.Anchor()
	for _, f := range s.Flows() {
		r.Flows = append(r.Flows, FlowRow{
			Time:   fmt.Sprintf("%.4f", f.Time),
			Amount: cashflow.M(f.Amount, "").String(),
			Offset: fmt.Sprintf("%.4f", anchor-f.Time),
		})
	}
	return r
}
