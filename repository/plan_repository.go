package repository

import (
	"errors"

	"emi-planner/domain"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanRepository interface {
	Save(input domain.ScheduleInput, result domain.ScheduleResult) (string, error)
	Get(id string) (domain.Plan, error)
}
