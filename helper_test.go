package converter

import (
	"strings"

	"github.com/shopspring/decimal"
)

// coin is a helper for tests to create a priced catalog currency.
// A zero price models a currency whose USD quote is unknown.
func coin(symbol string, price float64) *Currency {
	return &Currency{
		Slug:     strings.ToLower(symbol),
		Name:     symbol,
		Symbol:   symbol,
		USDPrice: decimal.NewFromFloat(price),
	}
}

// d is a helper for tests to create a decimal price from const.
func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
