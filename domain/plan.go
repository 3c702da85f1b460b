package domain

import "time"

// Plan is a stored schedule request. Only the input is authoritative; the
// summary fields are a snapshot taken when the plan was saved.
type Plan struct {
	ID                 string        `json:"id"`
	Input              ScheduleInput `json:"input"`
	MonthlyEMI         float64       `json:"monthly_emi"`
	TotalInterest      float64       `json:"total_interest"`
	TotalPrincipalPaid float64       `json:"total_principal_paid"`
	PayoffMonths       int           `json:"payoff_months"`
	CreatedAt          time.Time     `json:"created_at"`
}

// NewPlan snapshots result next to the input that produced it.
func NewPlan(id string, input ScheduleInput, result ScheduleResult, createdAt time.Time) Plan {
	return Plan{
		ID:                 id,
		Input:              input,
		MonthlyEMI:         result.MonthlyEMI,
		TotalInterest:      result.TotalInterest,
		TotalPrincipalPaid: result.TotalPrincipalPaid,
		PayoffMonths:       result.Months(),
		CreatedAt:          createdAt,
	}
}
