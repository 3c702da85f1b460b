package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"emi-planner/domain"
	"emi-planner/repository"
	"emi-planner/service"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := repository.NewPlanRepositoryMemory()
	loanService := service.NewLoanService(repo, repository.NewMemoryCache())
	limiter := NewRateLimiter(100, time.Minute)
	t.Cleanup(limiter.Stop)

	return NewRouter(
		NewLoanHandler(loanService),
		NewTenureHandler(service.NewTenureService(loanService)),
		limiter,
	)
}

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestQuoteEMIHandler_OK(t *testing.T) {

	router := newTestRouter(t)

	w := post(router, "/loan/emi", `{
		"principal": 100000,
		"annual_rate_percent": 12,
		"tenure_months": 12
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.LoanResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if result.MonthlyEMI != 8884.88 {
		t.Errorf("expected EMI 8884.88, got %.2f", result.MonthlyEMI)
	}
}

func TestQuoteEMIHandler_MethodNotAllowed(t *testing.T) {

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/loan/emi", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestQuoteEMIHandler_BadRequest(t *testing.T) {

	router := newTestRouter(t)

	if w := post(router, "/loan/emi", `{invalid-json}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad json, got %d", w.Code)
	}
	if w := post(router, "/loan/emi", `{"principal": 1000, "annual_rate_percent": 0, "tenure_months": 12}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero rate, got %d", w.Code)
	}
}

func TestScheduleHandler_OK(t *testing.T) {

	router := newTestRouter(t)

	w := post(router, "/loan/schedule", `{
		"principal": 100000,
		"annual_rate_percent": 12,
		"tenure_months": 24,
		"yearly_hike_percent": 10,
		"prepayments": {"3": 5000},
		"floating_rate_changes": {"7": 13.5}
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.ScheduleResponse
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if result.PlanID == "" {
		t.Errorf("expected a plan id")
	}
	if len(result.Rows) == 0 || result.Rows[2].Prepayment != 5000 {
		t.Fatalf("expected prepayment in month 3, got %+v", result.Rows)
	}
	if !result.FullyRepaid {
		t.Errorf("expected the loan to be repaid")
	}

	planReq := httptest.NewRequest(http.MethodGet, "/loan/plans/"+result.PlanID, nil)
	planW := httptest.NewRecorder()
	router.ServeHTTP(planW, planReq)

	if planW.Code != http.StatusOK {
		t.Fatalf("expected 200 for stored plan, got %d", planW.Code)
	}

	var stored planResponse
	if err := json.NewDecoder(planW.Body).Decode(&stored); err != nil {
		t.Fatalf("invalid plan response: %v", err)
	}
	if stored.Plan.Input.FloatingRateChanges[7] != 13.5 {
		t.Errorf("expected stored floating rate change, got %+v", stored.Plan.Input)
	}
	if len(stored.Schedule.Rows) != len(result.Rows) {
		t.Errorf("expected %d rows, got %d", len(result.Rows), len(stored.Schedule.Rows))
	}
}

func TestScheduleHandler_Invalid(t *testing.T) {

	router := newTestRouter(t)

	w := post(router, "/loan/schedule", `{"principal": 100000, "annual_rate_percent": 12, "tenure_months": 0}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPlanHandler_NotFound(t *testing.T) {

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/loan/plans/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestTenureHandler(t *testing.T) {

	router := newTestRouter(t)

	w := post(router, "/loan/recommend-tenure", `{
		"principal": 100000,
		"annual_rate_percent": 12,
		"min_years": 1,
		"max_years": 3,
		"max_monthly_emi": 10000,
		"preference": "balanced"
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.TenureResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(result.Options) != 3 || result.RecommendedTenureMonths == 0 {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestHandlers_RequireJSON(t *testing.T) {

	router := newTestRouter(t)

	for _, path := range []string{"/loan/emi", "/loan/schedule", "/loan/recommend-tenure"} {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnsupportedMediaType {
			t.Errorf("%s: expected 415, got %d", path, w.Code)
		}
	}
}

func TestHandlers_RejectOversizedBody(t *testing.T) {

	router := newTestRouter(t)

	body := `{"principal": 100000, "annual_rate_percent": 12, "tenure_months": 12, "note": "` +
		strings.Repeat("x", maxBodyBytes) + `"}`

	w := post(router, "/loan/schedule", body)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}
