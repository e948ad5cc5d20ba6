// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package analytics

import (
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// roundHalfUp rounds d to the given number of decimal places, with exact
// halves rounded towards positive infinity.
func roundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Shift(places).Add(half).Floor().Shift(-places)
}

// meanOf returns sum/n rounded half-up to an integer. n must be positive.
func meanOf(sum decimal.Decimal, n int) int64 {
	return roundHalfUp(sum.Div(decimal.NewFromInt(int64(n))), 0).IntPart()
}
