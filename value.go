package cashflow

import "math"

// PresentValue returns the value of every cashflow of s compounded, or
// discounted, to the anchor of s at rate:
//
//	Σ amount_i · (1+rate)^(anchor − t_i)
//
// rate is a fraction (0.06 for 6%). It fails for rate <= -1 where compounding
// is undefined, and when the value is too large to be represented.
func PresentValue(rate float64, s Series) (float64, error) {
	if s.Len() == 0 {
		return 0, configErrorf("empty cashflow series")
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= -1 {
		return 0, domainErrorf("cannot compound at rate %v, rate must be finite and greater than -1", rate)
	}
	v, _ := valueAndSlope(rate, s)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domainErrorf("present value at rate %v overflows", rate)
	}
	return v, nil
}

// valueAndSlope returns the present value at rate and its derivative with respect to rate.
// rate must be greater than -1.
func valueAndSlope(rate float64, s Series) (value, slope float64) {
	anchor := s.Anchor()
	base := 1 + rate
	for _, f := range s.flows {
		n := anchor - f.Time
		c := math.Pow(base, n)
		value += f.Amount * c
		if n != 0 {
			slope += f.Amount * n * c / base
		}
	}
	return value, slope
}
