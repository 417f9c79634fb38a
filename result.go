package cashflow

import "fmt"

// Result is the outcome of Evaluate: either an IRRResult or a PresentValueResult.
type Result interface {
	Mode() Mode
	String() string
}

// IRRResult is a solved XIRR.
type IRRResult struct {
	Rate       Percent
	Iterations int
}

func (r IRRResult) Mode() Mode { return XIRR }

// String displays the rate in percent with 3 decimals.
func (r IRRResult) String() string { return fmt.Sprintf("IRR: %s %%", r.Rate.Fixed(3)) }

// PresentValueResult is the present value of a series at a rate.
type PresentValueResult struct {
	Rate  Percent
	Value Money
}

func (r PresentValueResult) Mode() Mode { return Present }

// String displays the value with 4 decimals, followed by its currency formatting if known.
func (r PresentValueResult) String() string {
	s := "Present value: " + r.Value.Fixed(4)
	if r.Value.HasCurrency() {
		s += " (" + r.Value.String() + ")"
	}
	return s
}

// Evaluate computes req. XIRR requests are solved with sv.
func Evaluate(req Request, sv Solver) (Result, error) {
	switch r := req.(type) {
	case XIRRRequest:
		sol, err := sv.Solve(r.Series())
		if err != nil {
			return nil, err
		}
		return IRRResult{Rate: PercentOf(sol.Rate), Iterations: sol.Iterations}, nil
	case PresentRequest:
		v, err := PresentValue(r.Rate().Rate(), r.Series())
		if err != nil {
			return nil, err
		}
		return PresentValueResult{Rate: r.Rate(), Value: M(v, "")}, nil
	default:
		return nil, configErrorf("unsupported request %T", req)
	}
}
