package amortization

import (
	"math"

	"emi-planner/domain"
)

// driftTolerance is relative to the principal. It only absorbs the
// floating-point residue left after the last installment, never a real
// balance, however small the loan.
const driftTolerance = 1e-9

// GenerateSchedule walks the loan month by month, applying floating-rate
// resets, yearly EMI hikes and one-off prepayments, and stops at the first
// month whose outstanding balance reaches zero.
//
// The loop never runs past TenureMonths. If the installments are too small
// to clear the loan by then, the last row carries the residual balance and no
// error is reported. Input maps are only read, never modified.
func GenerateSchedule(input domain.ScheduleInput) domain.ScheduleResult {
	result := domain.ScheduleResult{}
	if input.TenureMonths > 0 {
		result.Rows = make([]domain.ScheduleRow, 0, input.TenureMonths)
	}

	balance := input.Principal
	rate := input.AnnualRatePercent
	emi := ComputeEMI(balance, rate, input.TenureMonths)
	repaid := driftTolerance * math.Max(1, input.Principal)

	for month := 1; month <= input.TenureMonths; month++ {
		// Re-amortize what is left over the remaining months before any
		// interest is charged at the new rate.
		if newRate, ok := input.FloatingRateChanges[month]; ok {
			rate = newRate
			emi = ComputeEMI(balance, rate, input.TenureMonths-month+1)
		}

		if month > 1 && (month-1)%12 == 0 {
			emi += emi * input.YearlyHikePercent / 100
		}

		interest := balance * monthlyRate(rate)
		principalComponent := emi - interest
		prepayment := input.Prepayments[month]

		newBalance := balance - principalComponent - prepayment
		if newBalance < repaid {
			principalComponent += newBalance
			newBalance = 0
		}

		result.Rows = append(result.Rows, domain.ScheduleRow{
			Month:              month,
			EMI:                emi,
			PrincipalComponent: principalComponent,
			InterestComponent:  interest,
			Prepayment:         prepayment,
			OutstandingBalance: newBalance,
		})
		result.TotalInterest += interest
		result.TotalPrincipalPaid += principalComponent + prepayment
		balance = newBalance

		if balance <= 0 {
			break
		}
	}

	if len(result.Rows) > 0 {
		result.MonthlyEMI = result.Rows[0].EMI
	}
	return result
}
