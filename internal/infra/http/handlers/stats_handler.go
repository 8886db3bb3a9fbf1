package handlers

import (
	"net/http"

	"github.com/interview-me/api/internal/usecase"
)

type StatsHandler struct {
	StatsUC *usecase.DashboardStatsUseCase
}

func NewStatsHandler(statsUC *usecase.DashboardStatsUseCase) *StatsHandler {
	return &StatsHandler{StatsUC: statsUC}
}

// Dashboard (GET /clients/stats/dashboard?workerId=)
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	workerID := r.URL.Query().Get("workerId")

	stats, err := h.StatsUC.Execute(r.Context(), workerID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeData(w, http.StatusOK, stats, "")
}
