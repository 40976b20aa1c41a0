package handlers

import (
	"net/http"

	"blogdash/internal/database"
	"blogdash/internal/utils"
)

type CommonHandler struct {
	db database.Service
}

func NewCommonHandler(db database.Service) *CommonHandler {
	return &CommonHandler{db: db}
}

// HealthHandler reports the database ping result. A failed ping answers 503.
func (h *CommonHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	health := h.db.Health()
	status := http.StatusOK
	if _, failed := health["error"]; failed {
		status = http.StatusServiceUnavailable
	}
	utils.RespondWithJSON(w, status, health)
}
