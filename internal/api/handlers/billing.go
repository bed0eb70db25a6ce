package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/api/dto"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/payment"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/errors"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/utils"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/validator"
)

type BillingHandler struct {
	service   subscription.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewBillingHandler(service subscription.Service, log *logger.Logger, val *validator.Validator) *BillingHandler {
	return &BillingHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// GetSubscription returns an employee's subscription
// @Summary Get subscription
// @Description Get an employee's subscription; 404 when none is on file
// @Tags Billing
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} subscription.Subscription "Subscription"
// @Failure 404 {object} utils.ErrorResponse "No subscription on file"
// @Security BearerAuth
// @Router /employees/{id}/subscription [get]
func (h *BillingHandler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	sub, err := h.service.Get(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	if sub == nil {
		utils.WriteError(w, errors.NotFound("subscription"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, sub)
}

// SetSubscription creates or replaces an employee's subscription
// @Summary Set subscription
// @Description Create or replace an employee's subscription plan
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body dto.SetSubscriptionRequest true "Subscription details"
// @Success 200 {object} subscription.Subscription "Stored subscription"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Security BearerAuth
// @Router /employees/{id}/subscription [put]
func (h *BillingHandler) SetSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	var req dto.SetSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}
	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	sub := &subscription.Subscription{
		EmployeeID:     id,
		PlanName:       req.PlanName,
		DurationDays:   req.DurationDays,
		StartDate:      req.StartDate,
		ExpirationDate: req.ExpirationDate,
		Status:         req.Status,
	}
	subID, err := h.service.Set(r.Context(), sub)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	sub.ID = subID

	utils.WriteSuccess(w, http.StatusOK, sub)
}

// CancelSubscription removes an employee's subscription
// @Summary Cancel subscription
// @Description Remove an employee's subscription from file
// @Tags Billing
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} utils.SuccessResponse "Cancelled"
// @Security BearerAuth
// @Router /employees/{id}/subscription [delete]
func (h *BillingHandler) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Subscription cancelled", nil)
}

// ListPayments returns an employee's payment history
// @Summary List payments
// @Description Get an employee's payment history, newest first
// @Tags Billing
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {array} payment.Record "Payment history"
// @Security BearerAuth
// @Router /employees/{id}/payments [get]
func (h *BillingHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	history, err := h.service.Payments(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, history)
}

// RecordPayment appends a payment to an employee's history
// @Summary Record payment
// @Description Record a payment and refresh the subscription's cached total
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} payment.Record "Recorded payment"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Security BearerAuth
// @Router /employees/{id}/payments [post]
func (h *BillingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}
	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	rec := &payment.Record{
		EmployeeID: id,
		Type:       req.Type,
		Amount:     req.Amount,
		Status:     req.Status,
	}
	if req.Date != nil {
		rec.Date = *req.Date
	} else {
		rec.Date = time.Now()
	}

	recID, err := h.service.RecordPayment(r.Context(), rec)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	rec.ID = recID

	utils.WriteSuccess(w, http.StatusCreated, rec)
}
