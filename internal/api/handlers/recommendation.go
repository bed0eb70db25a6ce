package handlers

import (
	"net/http"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/recommendation"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/utils"
)

type RecommendationHandler struct {
	service recommendation.Service
	logger  *logger.Logger
}

func NewRecommendationHandler(service recommendation.Service, log *logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		logger:  log,
	}
}

// ForEmployee returns the rule engine output for one employee
// @Summary Employee recommendations
// @Description Evaluate account health rules for one employee, in display order
// @Tags Recommendations
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {array} recommendation.Recommendation "Recommendations"
// @Failure 404 {object} utils.ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/recommendations [get]
func (h *RecommendationHandler) ForEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	recs, err := h.service.ForEmployee(r.Context(), id)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to evaluate recommendations")
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, recs)
}
