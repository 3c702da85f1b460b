package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/cespare/xxhash/v2"

	"emi-planner/amortization"
	"emi-planner/domain"
	"emi-planner/repository"
)

type LoanService struct {
	repo  repository.PlanRepository
	cache repository.CacheRepository
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(repo repository.PlanRepository,
	cache repository.CacheRepository,
) *LoanService {
	return &LoanService{repo: repo, cache: cache}
}

// ValidateSchedule applies the engine preconditions and the service limits.
func (s *LoanService) ValidateSchedule(input domain.ScheduleInput) error {
	if err := amortization.Validate(input); err != nil {
		return err
	}
	if input.Principal > MaxPrincipal {
		return limitError("principal", "exceeds the maximum of %.2f", MaxPrincipal)
	}
	if err := checkRate("annual_rate_percent", input.AnnualRatePercent); err != nil {
		return err
	}
	if input.TenureMonths > MaxTenureMonths {
		return limitError("tenure_months", "exceeds the maximum of %d months", MaxTenureMonths)
	}
	if input.YearlyHikePercent > MaxYearlyHikePercent {
		return limitError("yearly_hike_percent", "exceeds the maximum of %.2f%%", MaxYearlyHikePercent)
	}
	for month, rate := range input.FloatingRateChanges {
		if err := checkRate(fmt.Sprintf("floating_rate_changes[%d]", month), rate); err != nil {
			return err
		}
	}
	for month, amount := range input.Prepayments {
		if amount > MaxPrincipal {
			return limitError(fmt.Sprintf("prepayments[%d]", month), "exceeds the maximum of %.2f", MaxPrincipal)
		}
	}
	return nil
}

func checkRate(field string, rate float64) error {
	if rate < MinInterestRate || rate > MaxInterestRate {
		return limitError(field, "must be between %.2f%% and %.2f%%", MinInterestRate, MaxInterestRate)
	}
	return nil
}

func limitError(field, format string, args ...any) error {
	return &amortization.ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// QuoteEMI returns the installment and totals of a plain fixed-rate loan.
func (s *LoanService) QuoteEMI(input domain.LoanInput) (domain.LoanResult, error) {
	if err := s.ValidateSchedule(domain.ScheduleInput{
		Principal:         input.Principal,
		AnnualRatePercent: input.AnnualRatePercent,
		TenureMonths:      input.TenureMonths,
	}); err != nil {
		return domain.LoanResult{}, err
	}

	emi := amortization.ComputeEMI(input.Principal, input.AnnualRatePercent, input.TenureMonths)
	total := emi * float64(input.TenureMonths)

	return domain.LoanResult{
		MonthlyEMI:    amortization.Round2(emi),
		TotalPayment:  amortization.Round2(total),
		TotalInterest: amortization.Round2(total - input.Principal),
	}, nil
}

// GenerateSchedule validates input, builds the display schedule (from cache
// when possible) and stores the input as a plan.
func (s *LoanService) GenerateSchedule(
	ctx context.Context,
	input domain.ScheduleInput,
) (domain.ScheduleResponse, error) {
	if err := s.ValidateSchedule(input); err != nil {
		return domain.ScheduleResponse{}, err
	}

	key, err := scheduleCacheKey(input)
	if err != nil {
		return domain.ScheduleResponse{}, err
	}

	result, cached := s.cachedSchedule(ctx, key)
	if !cached {
		result = amortization.Round(amortization.GenerateSchedule(input))
		s.storeSchedule(ctx, key, result)
	}

	response := domain.ScheduleResponse{
		ScheduleResult: result,
		Residual:       result.ResidualBalance(),
		FullyRepaid:    result.PaidOff(),
	}

	// Saving the plan is not critical; the schedule is still returned.
	id, err := s.repo.Save(input, result)
	if err != nil {
		log.Printf("Warning: failed to save schedule plan: %v", err)
	} else {
		response.PlanID = id
	}

	return response, nil
}

// GetPlan returns a stored plan together with its schedule recomputed from
// the stored input.
func (s *LoanService) GetPlan(ctx context.Context, id string) (domain.Plan, domain.ScheduleResponse, error) {
	plan, err := s.repo.Get(id)
	if err != nil {
		return domain.Plan{}, domain.ScheduleResponse{}, err
	}

	result := amortization.Round(amortization.GenerateSchedule(plan.Input))
	return plan, domain.ScheduleResponse{
		PlanID:         plan.ID,
		ScheduleResult: result,
		Residual:       result.ResidualBalance(),
		FullyRepaid:    result.PaidOff(),
	}, nil
}

func (s *LoanService) cachedSchedule(ctx context.Context, key string) (domain.ScheduleResult, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.ScheduleResult{}, false
	}

	var result domain.ScheduleResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("Warning: discarding unreadable cached schedule %s: %v", key, err)
		return domain.ScheduleResult{}, false
	}
	return result, true
}

func (s *LoanService) storeSchedule(ctx context.Context, key string, result domain.ScheduleResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		log.Printf("Warning: failed to encode schedule for cache: %v", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		log.Printf("Warning: failed to cache schedule: %v", err)
	}
}

// scheduleCacheKey hashes the canonical JSON form of input. encoding/json
// writes map keys in sorted order, so equal inputs give equal keys.
func scheduleCacheKey(input domain.ScheduleInput) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode schedule input: %w", err)
	}
	return fmt.Sprintf("schedule:%016x", xxhash.Sum64(raw)), nil
}
