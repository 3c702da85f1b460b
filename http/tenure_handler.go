package http

import (
	"log"
	"net/http"

	"emi-planner/domain"
	"emi-planner/service"
)

type TenureHandler struct {
	service *service.TenureService
}

func NewTenureHandler(service *service.TenureService) *TenureHandler {
	return &TenureHandler{service: service}
}

func (h *TenureHandler) RecommendTenure(w http.ResponseWriter, r *http.Request) {
	var input domain.TenureInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.RecommendTenure(input)
	if err != nil {
		log.Printf("Error recommending tenure: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
