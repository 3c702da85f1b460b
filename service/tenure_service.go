package service

import (
	"errors"
	"fmt"
	"sort"

	"emi-planner/amortization"
	"emi-planner/domain"
)

var ErrNoTenureFits = errors.New("no tenure in the requested range keeps the EMI within the maximum")

const (
	PreferenceMinimizeInterest = "minimize_interest"
	PreferenceMinimizeEMI      = "minimize_emi"
	PreferenceBalanced         = "balanced"
)

type TenureService struct {
	loanService *LoanService
}

func NewTenureService(loanService *LoanService) *TenureService {
	return &TenureService{loanService: loanService}
}

// RecommendTenure runs the full schedule for every whole-year tenure in the
// requested range and ranks the ones whose first EMI is affordable.
func (s *TenureService) RecommendTenure(
	input domain.TenureInput,
) (domain.TenureResult, error) {

	if input.MinYears < MinTenureYears || input.MaxYears < MinTenureYears {
		return domain.TenureResult{}, errors.New("tenure range must start at 1 year or more")
	}
	if input.MinYears > input.MaxYears {
		return domain.TenureResult{}, errors.New("min_years is greater than max_years")
	}
	if input.MaxYears > MaxTenureYears {
		return domain.TenureResult{}, fmt.Errorf("max_years exceeds the limit of %d years", MaxTenureYears)
	}
	if input.MaxMonthlyEMI <= 0 {
		return domain.TenureResult{}, errors.New("max_monthly_emi must be positive")
	}

	switch input.Preference {
	case PreferenceMinimizeInterest, PreferenceMinimizeEMI, PreferenceBalanced:
	default:
		return domain.TenureResult{}, fmt.Errorf("unknown preference %q", input.Preference)
	}

	options := []domain.TenureOption{}

	for years := input.MinYears; years <= input.MaxYears; years++ {
		scheduleInput := domain.ScheduleInput{
			Principal:           input.Principal,
			AnnualRatePercent:   input.AnnualRatePercent,
			TenureMonths:        years * 12,
			YearlyHikePercent:   input.YearlyHikePercent,
			Prepayments:         input.Prepayments,
			FloatingRateChanges: input.FloatingRateChanges,
		}
		if err := s.loanService.ValidateSchedule(scheduleInput); err != nil {
			return domain.TenureResult{}, err
		}

		result := amortization.GenerateSchedule(scheduleInput)
		if result.MonthlyEMI > input.MaxMonthlyEMI {
			continue
		}

		options = append(options, domain.TenureOption{
			TenureMonths:   scheduleInput.TenureMonths,
			MonthlyEMI:     amortization.Round2(result.MonthlyEMI),
			TotalInterest:  amortization.Round2(result.TotalInterest),
			PayoffMonths:   result.Months(),
			ResidualAmount: amortization.Round2(result.ResidualBalance()),
			Reason:         reasonFor(input.Preference),
		})
	}

	if len(options) == 0 {
		return domain.TenureResult{}, ErrNoTenureFits
	}

	scoreOptions(options, input.Preference)

	// Highest score first; shorter tenure wins ties.
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Score != options[j].Score {
			return options[i].Score > options[j].Score
		}
		return options[i].TenureMonths < options[j].TenureMonths
	})

	return domain.TenureResult{
		RecommendedTenureMonths: options[0].TenureMonths,
		Options:                 options,
	}, nil
}

// scoreOptions gives each option a 0-10 score per criterion, normalized
// across the candidate set, and blends them by preference.
func scoreOptions(options []domain.TenureOption, preference string) {
	interest := spanOf(options, func(o domain.TenureOption) float64 { return o.TotalInterest })
	emi := spanOf(options, func(o domain.TenureOption) float64 { return o.MonthlyEMI })
	tenure := spanOf(options, func(o domain.TenureOption) float64 { return float64(o.TenureMonths) })

	for i := range options {
		interestScore := interest.score(options[i].TotalInterest)
		emiScore := emi.score(options[i].MonthlyEMI)
		tenureScore := tenure.score(float64(options[i].TenureMonths))

		var score float64
		switch preference {
		case PreferenceMinimizeInterest:
			score = 0.6*interestScore + 0.2*emiScore + 0.2*tenureScore
		case PreferenceMinimizeEMI:
			score = 0.2*interestScore + 0.6*emiScore + 0.2*tenureScore
		default:
			score = 0.4*interestScore + 0.4*emiScore + 0.2*tenureScore
		}
		options[i].Score = amortization.Round2(score)
	}
}

type span struct {
	min, max float64
}

func spanOf(options []domain.TenureOption, value func(domain.TenureOption) float64) span {
	s := span{min: value(options[0]), max: value(options[0])}
	for _, o := range options[1:] {
		v := value(o)
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	return s
}

// score maps the lowest value to 10 and the highest to 0.
func (s span) score(v float64) float64 {
	if s.max == s.min {
		return 10
	}
	return 10 * (1 - (v-s.min)/(s.max-s.min))
}

func reasonFor(preference string) string {
	switch preference {
	case PreferenceMinimizeInterest:
		return "Tenure chosen to keep total interest low"
	case PreferenceMinimizeEMI:
		return "Tenure chosen to keep the monthly EMI low"
	default:
		return "Balance between monthly EMI and total interest"
	}
}
