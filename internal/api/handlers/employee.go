package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/malakyounes2004-ai/fitfix/internal/api/dto"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/report"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/errors"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/utils"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/validator"
)

type EmployeeHandler struct {
	service   employee.Service
	reportSvc report.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewEmployeeHandler(service employee.Service, reportSvc report.Service, log *logger.Logger, val *validator.Validator) *EmployeeHandler {
	return &EmployeeHandler{
		service:   service,
		reportSvc: reportSvc,
		logger:    log,
		validator: val,
	}
}

// employeeID parses the {id} URL parameter
func employeeID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.BadRequest("Invalid employee ID")
	}
	return id, nil
}

// List returns employees with filters and pagination
// @Summary List employees
// @Description Get employees filtered by role, active state, or a name/email search
// @Tags Employees
// @Produce json
// @Param role query string false "Filter by role (coach, manager)"
// @Param active query bool false "Filter by active state"
// @Param search query string false "Search in name and email"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.PaginatedResponse "Employees"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	params := utils.ParsePaginationParams(r)

	filter := employee.Filter{
		Role:   r.URL.Query().Get("role"),
		Search: r.URL.Query().Get("search"),
	}
	if v := r.URL.Query().Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			utils.WriteError(w, errors.BadRequest("Invalid active filter"))
			return
		}
		filter.Active = &active
	}

	emps, total, err := h.service.List(r.Context(), filter, params.PageSize, params.Offset)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list employees")
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.NewPaginatedResponse(emps, params.Page, params.PageSize, total))
}

// Create registers a new employee
// @Summary Create employee
// @Description Register a new coach or manager account
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} employee.Employee "Created employee"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}
	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	emp := &employee.Employee{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Role:        req.Role,
		IsActive:    true,
		PhoneNumber: req.PhoneNumber,
	}
	id, err := h.service.Create(r.Context(), emp)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	emp.ID = id

	utils.WriteSuccess(w, http.StatusCreated, emp)
}

// Get returns one employee
// @Summary Get employee
// @Description Get a single employee by ID
// @Tags Employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} employee.Employee "Employee"
// @Failure 404 {object} utils.ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	emp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, emp)
}

// Update modifies an employee
// @Summary Update employee
// @Description Update an employee's profile fields
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} employee.Employee "Updated employee"
// @Failure 404 {object} utils.ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}
	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	emp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	if req.DisplayName != nil {
		emp.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Role != nil {
		emp.Role = *req.Role
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = *req.PhoneNumber
	}

	if err := h.service.Update(r.Context(), emp); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, emp)
}

// Delete removes an employee
// @Summary Delete employee
// @Description Delete an employee and all associated records
// @Tags Employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} utils.SuccessResponse "Deleted"
// @Failure 404 {object} utils.ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Employee deleted", nil)
}

// RecordActivity stores an employee's activity snapshot
// @Summary Record activity
// @Description Record or replace an employee's platform activity snapshot
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body dto.ActivityRequest true "Activity snapshot"
// @Success 200 {object} employee.ActivityMetrics "Stored snapshot"
// @Failure 404 {object} utils.ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/activity [put]
func (h *EmployeeHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	var req dto.ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}
	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	metrics := &employee.ActivityMetrics{
		EmployeeID:          id,
		UsersManaged:        req.UsersManaged,
		MealPlansCreated:    req.MealPlansCreated,
		WorkoutPlansCreated: req.WorkoutPlansCreated,
		LastLogin:           req.LastLogin,
		ChatMessages:        req.ChatMessages,
		TotalSessions:       req.TotalSessions,
	}
	if err := h.service.RecordActivity(r.Context(), metrics); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, metrics)
}

// Report returns the full account report for an employee
// @Summary Employee report
// @Description Get the aggregate account report: subscription, activity, and payment history
// @Tags Employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} report.EmployeeReport "Account report"
// @Failure 404 {object} utils.ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/report [get]
func (h *EmployeeHandler) Report(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	rep, err := h.reportSvc.Assemble(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, rep)
}
