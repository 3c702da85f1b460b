package amortization

import (
	"math"

	"github.com/shopspring/decimal"

	"emi-planner/domain"
)

// Round2 rounds a money value half away from zero to two decimals.
// NaN and infinities are returned unchanged.
func Round2(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// Round returns a display copy of result with every amount rounded to two
// decimals. Totals are rounded from the unrounded sums, not re-added from
// rounded rows.
func Round(result domain.ScheduleResult) domain.ScheduleResult {
	rounded := domain.ScheduleResult{
		Rows:               make([]domain.ScheduleRow, len(result.Rows)),
		TotalInterest:      Round2(result.TotalInterest),
		TotalPrincipalPaid: Round2(result.TotalPrincipalPaid),
		MonthlyEMI:         Round2(result.MonthlyEMI),
	}
	for i, row := range result.Rows {
		rounded.Rows[i] = domain.ScheduleRow{
			Month:              row.Month,
			EMI:                Round2(row.EMI),
			PrincipalComponent: Round2(row.PrincipalComponent),
			InterestComponent:  Round2(row.InterestComponent),
			Prepayment:         Round2(row.Prepayment),
			OutstandingBalance: Round2(row.OutstandingBalance),
		}
	}
	return rounded
}
