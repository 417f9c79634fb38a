package cashflow

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a rate expressed in percent: 6 means 6%.
type Percent float64

// PercentOf converts a rate fraction into a Percent.
func PercentOf(rate float64) Percent { return Percent(rate * 100) }

// Rate returns the rate as a fraction: 0.06 for 6%.
func (p Percent) Rate() float64 { return float64(p) / 100 }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// Fixed returns p rounded half away from zero to places decimals, without the percent sign.
func (p Percent) Fixed(places int32) string {
	return decimal.NewFromFloat(float64(p)).StringFixed(places)
}
