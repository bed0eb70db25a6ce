package handlers

import (
	"net/http"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/statistics"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/utils"
)

type StatisticsHandler struct {
	service statistics.Service
	logger  *logger.Logger
}

func NewStatisticsHandler(service statistics.Service, log *logger.Logger) *StatisticsHandler {
	return &StatisticsHandler{
		service: service,
		logger:  log,
	}
}

// Global returns fleet-wide KPIs
// @Summary Global statistics
// @Description Get fleet-wide subscription, revenue, and popularity KPIs
// @Tags Statistics
// @Produce json
// @Success 200 {object} statistics.GlobalStatistics "Fleet statistics"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /statistics [get]
func (h *StatisticsHandler) Global(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Global(r.Context())
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to compute statistics")
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, stats)
}
