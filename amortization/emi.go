// Package amortization computes EMIs and month-by-month repayment schedules
// for reducing-balance loans. Everything here is pure and safe for concurrent use.
package amortization

import "math"

// monthlyRate converts a nominal annual percentage into a monthly fraction.
func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 12 / 100
}

// ComputeEMI returns the reducing-balance annuity installment that repays
// principal over months at annualRatePercent. The value is not rounded.
//
// months must be at least 1 and the rate must be positive; a zero rate
// divides by zero and yields NaN, which callers are expected to prevent
// (see Validate).
func ComputeEMI(principal, annualRatePercent float64, months int) float64 {
	r := monthlyRate(annualRatePercent)
	growth := math.Pow(1+r, float64(months))
	return principal * r * growth / (growth - 1)
}
