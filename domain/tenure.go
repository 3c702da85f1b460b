package domain

type TenureInput struct {
	Principal           float64         `json:"principal"`
	AnnualRatePercent   float64         `json:"annual_rate_percent"`
	MinYears            int             `json:"min_years"`
	MaxYears            int             `json:"max_years"`
	MaxMonthlyEMI       float64         `json:"max_monthly_emi"`
	YearlyHikePercent   float64         `json:"yearly_hike_percent"`
	Prepayments         map[int]float64 `json:"prepayments,omitempty"`
	FloatingRateChanges map[int]float64 `json:"floating_rate_changes,omitempty"`
	Preference          string          `json:"preference"` // "minimize_interest", "minimize_emi", "balanced"
}

type TenureOption struct {
	TenureMonths   int     `json:"tenure_months"`
	MonthlyEMI     float64 `json:"monthly_emi"`
	TotalInterest  float64 `json:"total_interest"`
	PayoffMonths   int     `json:"payoff_months"`
	ResidualAmount float64 `json:"residual_amount,omitempty"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
}

type TenureResult struct {
	RecommendedTenureMonths int            `json:"recommended_tenure_months"`
	Options                 []TenureOption `json:"options"`
}
