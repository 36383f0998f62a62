package converter

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary display value, typically a catalog quote in USD.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// USD is a convenient factory for the quote currency of the catalog.
func USD(value decimal.Decimal) Money { return M(value, "USD") }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
