package domain

// ScheduleInput is built fresh by the caller for every recompute.
// Prepayments and FloatingRateChanges are sparse and keyed by 1-based month.
type ScheduleInput struct {
	Principal           float64         `json:"principal"`
	AnnualRatePercent   float64         `json:"annual_rate_percent"`
	TenureMonths        int             `json:"tenure_months"`
	YearlyHikePercent   float64         `json:"yearly_hike_percent"`
	Prepayments         map[int]float64 `json:"prepayments,omitempty"`
	FloatingRateChanges map[int]float64 `json:"floating_rate_changes,omitempty"`
}

type ScheduleRow struct {
	Month              int     `json:"month"`
	EMI                float64 `json:"emi"`
	PrincipalComponent float64 `json:"principal_component"`
	InterestComponent  float64 `json:"interest_component"`
	Prepayment         float64 `json:"prepayment"`
	OutstandingBalance float64 `json:"outstanding_balance"`
}

// ScheduleResult is derived from a ScheduleInput and never mutated afterwards.
type ScheduleResult struct {
	Rows               []ScheduleRow `json:"rows"`
	TotalInterest      float64       `json:"total_interest"`
	TotalPrincipalPaid float64       `json:"total_principal_paid"`
	MonthlyEMI         float64       `json:"monthly_emi"`
}

// Months returns the number of months actually processed.
func (r ScheduleResult) Months() int {
	return len(r.Rows)
}

// ResidualBalance is the balance left after the last processed month.
// It is positive only when the tenure ran out before the loan was repaid.
func (r ScheduleResult) ResidualBalance() float64 {
	if len(r.Rows) == 0 {
		return 0
	}
	return r.Rows[len(r.Rows)-1].OutstandingBalance
}

func (r ScheduleResult) PaidOff() bool {
	return len(r.Rows) > 0 && r.ResidualBalance() <= 0
}

// ScheduleResponse is what callers get back from the service: the display
// schedule plus the id under which its input was stored.
type ScheduleResponse struct {
	PlanID string `json:"plan_id,omitempty"`
	ScheduleResult
	Residual    float64 `json:"residual_balance"`
	FullyRepaid bool    `json:"paid_off"`
}
