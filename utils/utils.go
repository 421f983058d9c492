package utils

import "math"

// PKRRate is the fixed PKR-per-USD conversion rate. Course prices are stored
// in USD and submitted/displayed in PKR.
const PKRRate = 280.0

// ToPKR converts a stored USD price to the displayed PKR amount.
func ToPKR(usd float64) float64 {
	return math.Round(usd*PKRRate*100) / 100
}

// FromPKR converts a submitted PKR amount to the stored USD price.
func FromPKR(pkr float64) float64 {
	return pkr / PKRRate
}
