package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "База данных недоступна", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, HealthResponse{Success: true, Status: "ok"}, http.StatusOK)
}
