package amortization

import (
	"fmt"
	"math"
	"sort"

	"emi-planner/domain"
)

// ValidationError reports the first input field that breaks a precondition
// of the engine.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the preconditions GenerateSchedule relies on. The engine
// itself does not call it; callers that want fail-fast behaviour do.
//
// Override keys outside 1..TenureMonths are accepted, they are simply never
// reached by the schedule.
func Validate(input domain.ScheduleInput) error {
	if !positiveFinite(input.Principal) {
		return invalid("principal", "must be a positive number, got %v", input.Principal)
	}
	if !positiveFinite(input.AnnualRatePercent) {
		return invalid("annual_rate_percent", "must be a positive number, got %v", input.AnnualRatePercent)
	}
	if input.TenureMonths <= 0 {
		return invalid("tenure_months", "must be positive, got %d", input.TenureMonths)
	}
	if input.YearlyHikePercent < 0 || math.IsNaN(input.YearlyHikePercent) || math.IsInf(input.YearlyHikePercent, 0) {
		return invalid("yearly_hike_percent", "must be zero or positive, got %v", input.YearlyHikePercent)
	}

	// Walk keys in order so the reported month is deterministic.
	for _, month := range sortedMonths(input.Prepayments) {
		amount := input.Prepayments[month]
		if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return invalid("prepayments", "month %d: amount must be zero or positive, got %v", month, amount)
		}
	}
	for _, month := range sortedMonths(input.FloatingRateChanges) {
		rate := input.FloatingRateChanges[month]
		if !positiveFinite(rate) {
			return invalid("floating_rate_changes", "month %d: rate must be a positive number, got %v", month, rate)
		}
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func sortedMonths(m map[int]float64) []int {
	months := make([]int, 0, len(m))
	for month := range m {
		months = append(months, month)
	}
	sort.Ints(months)
	return months
}
