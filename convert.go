package converter

import (
	"github.com/shopspring/decimal"
)

// bigAmount is the display threshold above which fractional precision is
// intentionally discarded: results are rounded to the nearest integer and
// grouped. This mirrors the converter screen's rounding policy and is lossy
// on purpose.
var bigAmount = decimal.NewFromInt(1000)

// Convert computes the target amount equivalent to a source amount, going
// through the two currencies' USD prices.
//
// The source amount may contain grouping separators. An unknown price
// (absent is modeled as non-positive) or an unparseable amount yields the
// empty string: conversion is simply not possible, and it is up to the
// caller to decide whether the target keeps its previous value or is
// cleared. Convert itself is pure and never fails.
func Convert(sourceAmount string, sourceUSD, targetUSD decimal.Decimal) string {
	if !sourceUSD.IsPositive() || !targetUSD.IsPositive() {
		return ""
	}
	amount, err := decimal.NewFromString(StripGroups(sourceAmount))
	if err != nil {
		return ""
	}
	result := amount.Mul(sourceUSD).Div(targetUSD)
	if result.GreaterThanOrEqual(bigAmount) {
		return FormatGroups(result.Round(0).String())
	}
	return result.StringFixed(2)
}
