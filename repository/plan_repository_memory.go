package repository

import (
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"emi-planner/domain"
)

// PlanRepositoryMemory is an in-memory implementation of PlanRepository.
type PlanRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.Plan
}

// NewPlanRepositoryMemory creates a new in-memory plan repository.
func NewPlanRepositoryMemory() *PlanRepositoryMemory {
	return &PlanRepositoryMemory{
		data: make(map[string]domain.Plan),
	}
}

// Save stores a copy of the input so later edits by the caller do not leak in.
func (r *PlanRepositoryMemory) Save(
	input domain.ScheduleInput,
	result domain.ScheduleResult,
) (string, error) {
	input.Prepayments = maps.Clone(input.Prepayments)
	input.FloatingRateChanges = maps.Clone(input.FloatingRateChanges)

	id := uuid.New().String()
	plan := domain.NewPlan(id, input, result, time.Now().UTC())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[id] = plan
	return id, nil
}

func (r *PlanRepositoryMemory) Get(id string) (domain.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.data[id]
	if !ok {
		return domain.Plan{}, ErrPlanNotFound
	}
	return plan, nil
}

// Len reports how many plans are stored.
func (r *PlanRepositoryMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
