package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/malakyounes2004-ai/fitfix/internal/api/dto"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/progress"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/errors"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/utils"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/validator"
)

type ProgressHandler struct {
	service   progress.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewProgressHandler(service progress.Service, log *logger.Logger, val *validator.Validator) *ProgressHandler {
	return &ProgressHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// AddEntry appends a day to an employee's client progress log
// @Summary Add progress entry
// @Description Record one day of client workout and meal plan adherence
// @Tags Progress
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body dto.AddProgressEntryRequest true "Progress entry"
// @Success 201 {object} progress.Entry "Recorded entry"
// @Failure 404 {object} utils.ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/progress [post]
func (h *ProgressHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	var req dto.AddProgressEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	entry := &progress.Entry{
		EmployeeID:       id,
		ClientName:       req.ClientName,
		WorkoutCompleted: req.WorkoutCompleted,
		MealPlanFollowed: req.MealPlanFollowed,
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}

	entryID, err := h.service.AddEntry(r.Context(), entry)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	entry.ID = entryID

	utils.WriteSuccess(w, http.StatusCreated, entry)
}

// ListEntries returns an employee's progress log
// @Summary List progress entries
// @Description Get an employee's raw client progress log, oldest first
// @Tags Progress
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {array} progress.Entry "Progress log"
// @Security BearerAuth
// @Router /employees/{id}/progress [get]
func (h *ProgressHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	entries, err := h.service.Entries(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, entries)
}

// Report returns the aggregated progress metrics
// @Summary Progress report
// @Description Aggregate the progress log into completion and compliance metrics
// @Tags Progress
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} progress.Stats "Aggregated metrics"
// @Security BearerAuth
// @Router /employees/{id}/progress/report [get]
func (h *ProgressHandler) Report(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	stats, err := h.service.Report(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, stats)
}
