package cashflow

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// HasCurrency reports whether the money's currency is a known ISO 4217 code.
func (m Money) HasCurrency() bool { return m.cur != "" && money.GetCurrency(m.cur) != nil }

// String returns the string representation of the money value.
//
// Known currencies are formatted with their symbol, grouping and fraction
// digits ($1,234.57). Other values are printed with 2 decimals.
func (m Money) String() string {
	if !m.HasCurrency() {
		return m.value.StringFixed(2)
	}
	cur := money.GetCurrency(m.cur)
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// Fixed returns the value rounded to places decimals, without currency.
func (m Money) Fixed(places int32) string { return m.value.StringFixed(places) }

func (m Money) Currency() string            { return m.cur }
func (m Money) Decimal() decimal.Decimal    { return m.value }
func (m Money) Neg() Money                  { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Round(places int32) Money    { return Money{value: m.value.Round(places), cur: m.cur} }
func (m Money) InCurrency(cur string) Money { return Money{value: m.value, cur: cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}
