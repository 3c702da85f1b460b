package http

import (
	"errors"
	"log"
	"net/http"

	"emi-planner/domain"
	"emi-planner/repository"
	"emi-planner/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

func (h *LoanHandler) QuoteEMI(w http.ResponseWriter, r *http.Request) {

	var input domain.LoanInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.QuoteEMI(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *LoanHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {

	var input domain.ScheduleInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.GenerateSchedule(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type planResponse struct {
	Plan     domain.Plan             `json:"plan"`
	Schedule domain.ScheduleResponse `json:"schedule"`
}

func (h *LoanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "missing plan id", http.StatusBadRequest)
		return
	}

	plan, schedule, err := h.service.GetPlan(r.Context(), id)
	if errors.Is(err, repository.ErrPlanNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Error loading plan %s: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, planResponse{Plan: plan, Schedule: schedule})
}
