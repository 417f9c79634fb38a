package cashflow

import (
	"math"

	"github.com/etnz/cashflow/date"
)

// Mode selects what is computed from a cashflow series.
type Mode int

const (
	// XIRR solves for the rate that zeroes the present value.
	XIRR Mode = iota
	// Present computes the present value at a given rate.
	Present
)

func (m Mode) String() string {
	switch m {
	case XIRR:
		return "xirr"
	case Present:
		return "present"
	default:
		return "unknown"
	}
}

// DefaultDateFormat is the strftime format of dates when none is given.
const DefaultDateFormat = "%Y-%m-%d"

// Input holds the raw options describing a computation, as the user gave them.
//
// Cashflow times come from exactly one of: nothing (the index of each value
// is its year offset), Years, or Dates parsed with DateFormat. Alternatively
// Source provides (date, amount) records, in which case Values, Years and
// Dates must all be empty.
type Input struct {
	Mode       Mode
	Values     []float64
	Years      []float64
	Dates      []string
	DateFormat string   // strftime or Go layout, defaults to DefaultDateFormat
	Rate       *Percent // required in Present mode
	Source     Source
}

// Request is a validated, immutable computation request: either an XIRRRequest or a PresentRequest.
type Request interface {
	Mode() Mode
	Series() Series
}

// XIRRRequest asks for the rate zeroing the present value of a series.
type XIRRRequest struct {
	series Series
}

func (r XIRRRequest) Mode() Mode     { return XIRR }
func (r XIRRRequest) Series() Series { return r.series }

// PresentRequest asks for the present value of a series at Rate.
type PresentRequest struct {
	series Series
	rate   Percent
}

func (r PresentRequest) Mode() Mode     { return Present }
func (r PresentRequest) Series() Series { return r.series }

// Rate returns the requested rate.
func (r PresentRequest) Rate() Percent { return r.rate }

// NewXIRRRequest returns a request to solve the XIRR of s.
func NewXIRRRequest(s Series) XIRRRequest { return XIRRRequest{series: s} }

// NewPresentRequest returns a request for the present value of s at rate.
func NewPresentRequest(s Series, rate Percent) (PresentRequest, error) {
	if math.IsNaN(float64(rate)) || math.IsInf(float64(rate), 0) || rate.Rate() <= -1 {
		return PresentRequest{}, domainErrorf("rate %v must be finite and greater than -100%%", rate)
	}
	return PresentRequest{series: s, rate: rate}, nil
}

// Normalize validates in and returns the matching Request.
//
// It never modifies in. Inconsistent options return an error wrapping
// ErrConfiguration, a present rate <= -100% an error wrapping ErrNumericDomain.
func Normalize(in Input) (Request, error) {
	switch in.Mode {
	case XIRR:
		if in.Rate != nil {
			return nil, configErrorf("a rate cannot be given to compute the XIRR")
		}
	case Present:
		if in.Rate == nil {
			return nil, configErrorf("a rate is required to compute the present value")
		}
	default:
		return nil, configErrorf("unknown mode %v", in.Mode)
	}

	values, years, dates := in.Values, in.Years, in.Dates
	if in.Source != nil {
		if len(values) > 0 || len(years) > 0 || len(dates) > 0 {
			return nil, configErrorf("values, years and dates cannot be given together with a data source")
		}
		records, err := in.Source.Records()
		if err != nil {
			return nil, err
		}
		values = make([]float64, len(records))
		dates = make([]string, len(records))
		for i, r := range records {
			values[i] = r.Amount.InexactFloat64()
			dates[i] = r.Date
		}
	}

	if len(values) == 0 {
		return nil, configErrorf("no cashflow values")
	}
	if len(years) > 0 && len(dates) > 0 {
		return nil, configErrorf("either years or dates can be given, not both")
	}

	times, err := normalizeTimes(len(values), years, dates, in.DateFormat)
	if err != nil {
		return nil, err
	}

	flows := make([]Flow, len(values))
	for i, v := range values {
		flows[i] = Flow{Time: times[i], Amount: v}
	}
	series, err := NewSeries(flows...)
	if err != nil {
		return nil, err
	}

	if in.Mode == Present {
		req, err := NewPresentRequest(series, *in.Rate)
		if err != nil {
			return nil, err
		}
		return req, nil
	}
	return NewXIRRRequest(series), nil
}

// normalizeTimes returns the fractional year of each of the n values.
func normalizeTimes(n int, years []float64, dates []string, format string) ([]float64, error) {
	switch {
	case len(years) > 0:
		if len(years) != n {
			return nil, configErrorf("got %d years for %d values", len(years), n)
		}
		return years, nil

	case len(dates) > 0:
		if len(dates) != n {
			return nil, configErrorf("got %d dates for %d values", len(dates), n)
		}
		parse := date.Parse
		if format != "" && format != DefaultDateFormat {
			parse = func(s string) (date.Date, error) { return date.ParseFormat(format, s) }
		}
		times := make([]float64, n)
		for i, s := range dates {
			on, err := parse(s)
			if err != nil {
				return nil, configErrorf("cashflow #%d: %v", i, err)
			}
			times[i] = on.FractionalYear()
		}
		return times, nil

	default:
		times := make([]float64, n)
		for i := range times {
			times[i] = float64(i)
		}
		return times, nil
	}
}
