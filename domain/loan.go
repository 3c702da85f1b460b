package domain

// LoanInput describes a plain fixed-rate loan used for EMI quotes.
type LoanInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months"`
}

type LoanResult struct {
	MonthlyEMI    float64 `json:"monthly_emi"`
	TotalPayment  float64 `json:"total_payment"`
	TotalInterest float64 `json:"total_interest"`
}
