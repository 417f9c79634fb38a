package cashflow

import (
	"fmt"
	"math"
	"slices"
)

// Flow is a single cashflow: a signed amount at a fractional-year time.
type Flow struct {
	Time   float64 // fractional year, see date.Date.FractionalYear
	Amount float64 // positive for inflows (deposits), negative for outflows (withdrawals)
}

func (f Flow) String() string { return fmt.Sprintf("%g@%g", f.Amount, f.Time) }

// Series is an immutable sequence of cashflows, in the order they were given.
type Series struct {
	flows []Flow
}

// NewSeries returns a Series holding a copy of flows.
//
// It fails if flows is empty or holds a non finite time or amount.
func NewSeries(flows ...Flow) (Series, error) {
	if len(flows) == 0 {
		return Series{}, configErrorf("empty cashflow series")
	}
	for i, f := range flows {
		if math.IsNaN(f.Time) || math.IsInf(f.Time, 0) {
			return Series{}, configErrorf("cashflow #%d: invalid time %v", i, f.Time)
		}
		if math.IsNaN(f.Amount) || math.IsInf(f.Amount, 0) {
			return Series{}, configErrorf("cashflow #%d: invalid amount %v", i, f.Amount)
		}
	}
	return Series{flows: slices.Clone(flows)}, nil
}

// MustSeries is like NewSeries but panics on error.
func MustSeries(flows ...Flow) Series {
	s, err := NewSeries(flows...)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// Len returns the number of cashflows.
func (s Series) Len() int { return len(s.flows) }

// Flows returns a copy of the cashflows.
func (s Series) Flows() []Flow { return slices.Clone(s.flows) }

// Anchor returns the valuation anchor: the latest time of the series.
func (s Series) Anchor() float64 {
	if len(s.flows) == 0 {
		return 0
	}
	anchor := s.flows[0].Time
	for _, f := range s.flows[1:] {
		anchor = max(anchor, f.Time)
	}
	return anchor
}

// With returns a new Series with f appended.
func (s Series) With(f Flow) Series {
	flows := make([]Flow, 0, len(s.flows)+1)
	flows = append(flows, s.flows...)
	return Series{flows: append(flows, f)}
}

// HasSignChange reports whether the series holds both a strictly positive and a strictly negative amount.
func (s Series) HasSignChange() bool {
	var pos, neg bool
	for _, f := range s.flows {
		pos = pos || f.Amount > 0
		neg = neg || f.Amount < 0
	}
	return pos && neg
}

// magnitude returns the sum of absolute amounts.
func (s Series) magnitude() float64 {
	var total float64
	for _, f := range s.flows {
		total += math.Abs(f.Amount)
	}
	return total
}
