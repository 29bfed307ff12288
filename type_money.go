package safehaven

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from any numeric value and a currency code.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64](value T, currency string) Money {
	return Money{value: decimal.NewFromFloat(float64(value)), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the money formatted in its currency, e.g. "$100,000.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Currency returns the currency code.
func (m Money) Currency() string { return m.cur }

// Float returns the value in major units as a float64.
func (m Money) Float() float64 { f, _ := m.value.Float64(); return f }

// Equal reports whether two money values have the same value and currency.
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// IsZero reports whether the value is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// LessThan reports whether m is strictly less than n.
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// Add returns m + n, in m's currency.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: m.cur} }

// Sub returns m - n, in m's currency.
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: m.cur} }
