package converter

import "github.com/shopspring/decimal"

// Currency identifies a priced asset from the catalog.
//
// Only USDPrice affects conversions; everything else is opaque metadata
// carried for display. A price is "known" when it is strictly positive:
// the catalog reports missing quotes as zero.
type Currency struct {
	ID     int64  `json:"id"`
	Rank   int    `json:"rank"`
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Type   string `json:"type,omitempty"`

	// USD quote block.
	USDPrice         decimal.Decimal `json:"usdPrice"`
	MarketCapUSD     decimal.Decimal `json:"marketCapUsd,omitempty"`
	Volume24hUSD     decimal.Decimal `json:"volume24hUsd,omitempty"`
	PercentChange24h float64         `json:"percentChange24h,omitempty"`

	LastUpdated string `json:"lastUpdated,omitempty"`
}

// HasPrice reports whether a conversion through this currency is possible.
// It is nil-safe: an unassigned field has no price.
func (c *Currency) HasPrice() bool {
	return c != nil && c.USDPrice.IsPositive()
}

// Price returns the USD price, or the zero decimal when the currency is nil.
func (c *Currency) Price() decimal.Decimal {
	if c == nil {
		return decimal.Decimal{}
	}
	return c.USDPrice
}
