package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"emi-planner/domain"
)

const createPlansTable = `
CREATE TABLE IF NOT EXISTS plans (
    id TEXT PRIMARY KEY,
    input_json TEXT NOT NULL,
    monthly_emi REAL NOT NULL,
    total_interest REAL NOT NULL,
    total_principal_paid REAL NOT NULL,
    payoff_months INTEGER NOT NULL,
    created_at TEXT NOT NULL
)`

// PlanRepositorySQLite persists plans in a SQLite database. The input is
// stored as JSON because its override maps are sparse and vary per plan.
type PlanRepositorySQLite struct {
	db *sql.DB
}

// OpenPlanRepositorySQLite opens (or creates) the database at databaseURL
// and makes sure the plans table exists.
func OpenPlanRepositorySQLite(databaseURL string) (*PlanRepositorySQLite, error) {
	db, err := sql.Open("sqlite3", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 30000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(createPlansTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create plans table: %w", err)
	}

	return &PlanRepositorySQLite{db: db}, nil
}

func (r *PlanRepositorySQLite) Close() error {
	return r.db.Close()
}

func (r *PlanRepositorySQLite) Save(
	input domain.ScheduleInput,
	result domain.ScheduleResult,
) (string, error) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode plan input: %w", err)
	}

	plan := domain.NewPlan(uuid.New().String(), input, result, time.Now().UTC())
	_, err = r.db.Exec(`
		INSERT INTO plans (
			id, input_json, monthly_emi, total_interest,
			total_principal_paid, payoff_months, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, string(inputJSON), plan.MonthlyEMI, plan.TotalInterest,
		plan.TotalPrincipalPaid, plan.PayoffMonths, plan.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert plan: %w", err)
	}
	return plan.ID, nil
}

func (r *PlanRepositorySQLite) Get(id string) (domain.Plan, error) {
	var (
		plan      domain.Plan
		inputJSON string
		createdAt string
	)
	err := r.db.QueryRow(`
		SELECT id, input_json, monthly_emi, total_interest,
			total_principal_paid, payoff_months, created_at
		FROM plans WHERE id = ?`, id,
	).Scan(
		&plan.ID, &inputJSON, &plan.MonthlyEMI, &plan.TotalInterest,
		&plan.TotalPrincipalPaid, &plan.PayoffMonths, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Plan{}, ErrPlanNotFound
	}
	if err != nil {
		return domain.Plan{}, fmt.Errorf("failed to load plan %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(inputJSON), &plan.Input); err != nil {
		return domain.Plan{}, fmt.Errorf("failed to decode plan %s input: %w", id, err)
	}
	if plan.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return domain.Plan{}, fmt.Errorf("failed to parse plan %s timestamp: %w", id, err)
	}
	return plan, nil
}
