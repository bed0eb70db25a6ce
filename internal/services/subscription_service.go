package services

import (
	"context"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/payment"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/errors"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
)

// SubscriptionServiceImpl implements subscription.Service
type SubscriptionServiceImpl struct {
	subRepo subscription.Repository
	payRepo payment.Repository
	logger  *logger.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(subRepo subscription.Repository, payRepo payment.Repository, log *logger.Logger) subscription.Service {
	return &SubscriptionServiceImpl{subRepo: subRepo, payRepo: payRepo, logger: log}
}

// Set creates or replaces the subscription for an employee
func (s *SubscriptionServiceImpl) Set(ctx context.Context, sub *subscription.Subscription) (int64, error) {
	if sub.EmployeeID == 0 {
		return 0, errors.BadRequest("Employee ID is required")
	}
	if sub.PlanName == "" {
		return 0, errors.BadRequest("Plan name is required")
	}
	if sub.Status == "" {
		sub.Status = subscription.StatusActive
	}

	// Derive expiration from the start date when only a duration is given
	if sub.ExpirationDate == nil && sub.StartDate != nil && sub.DurationDays > 0 {
		exp := sub.StartDate.AddDate(0, 0, sub.DurationDays)
		sub.ExpirationDate = &exp
	}

	id, err := s.subRepo.Upsert(ctx, sub)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(map[string]interface{}{
		"employee_id": sub.EmployeeID,
		"plan":        sub.PlanName,
		"status":      sub.Status,
	}).Info("Set subscription")

	return id, nil
}

// Get retrieves an employee's subscription; nil when absent
func (s *SubscriptionServiceImpl) Get(ctx context.Context, employeeID int64) (*subscription.Subscription, error) {
	return s.subRepo.GetByEmployee(ctx, employeeID)
}

// Cancel removes an employee's subscription
func (s *SubscriptionServiceImpl) Cancel(ctx context.Context, employeeID int64) error {
	return s.subRepo.Delete(ctx, employeeID)
}

// RecordPayment appends a payment record and refreshes the cached
// subscription payment total so the statistics aggregation reads a
// consistent figure
func (s *SubscriptionServiceImpl) RecordPayment(ctx context.Context, rec *payment.Record) (int64, error) {
	if rec.EmployeeID == 0 {
		return 0, errors.BadRequest("Employee ID is required")
	}
	if rec.Amount < 0 {
		return 0, errors.BadRequest("Payment amount cannot be negative")
	}
	if rec.Status == "" {
		rec.Status = payment.StatusCompleted
	}
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}

	id, err := s.payRepo.Create(ctx, rec)
	if err != nil {
		return 0, err
	}

	total, err := s.payRepo.TotalByEmployee(ctx, rec.EmployeeID)
	if err != nil {
		return 0, err
	}
	if err := s.subRepo.UpdateTotalPayments(ctx, rec.EmployeeID, total); err != nil {
		s.logger.WithError(err).Warn("Payment recorded but total refresh failed")
	}

	s.logger.WithFields(map[string]interface{}{
		"employee_id": rec.EmployeeID,
		"amount":      rec.Amount,
		"payment_id":  id,
	}).Info("Recorded payment")

	return id, nil
}

// Payments retrieves an employee's payment history, newest first
func (s *SubscriptionServiceImpl) Payments(ctx context.Context, employeeID int64) ([]*payment.Record, error) {
	return s.payRepo.ListByEmployee(ctx, employeeID)
}
