package service

const (
	MaxPrincipal         = 1_000_000_000.0
	MinInterestRate      = 0.1  // % per year
	MaxInterestRate      = 50.0 // % per year
	MaxTenureMonths      = 360  // 30 years
	MaxYearlyHikePercent = 100.0

	// Tenure recommendation searches whole years only.
	MinTenureYears = 1
	MaxTenureYears = MaxTenureMonths / 12
)
