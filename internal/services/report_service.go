package services

import (
	"context"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/payment"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/report"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
)

// ReportServiceImpl implements report.Service
type ReportServiceImpl struct {
	empRepo employee.Repository
	subRepo subscription.Repository
	payRepo payment.Repository
	logger  *logger.Logger
}

// NewReportService creates a new report service
func NewReportService(empRepo employee.Repository, subRepo subscription.Repository, payRepo payment.Repository, log *logger.Logger) report.Service {
	return &ReportServiceImpl{empRepo: empRepo, subRepo: subRepo, payRepo: payRepo, logger: log}
}

// Assemble builds the aggregate view of one employee account. Missing
// pieces (no subscription, no activity snapshot, no payments) are left
// nil rather than treated as errors; only a missing employee fails.
func (s *ReportServiceImpl) Assemble(ctx context.Context, employeeID int64) (*report.EmployeeReport, error) {
	emp, err := s.empRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	sub, err := s.subRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	activity, err := s.empRepo.GetActivity(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	history, err := s.payRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	total, err := s.payRepo.TotalByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	isActive := emp.IsActive
	return &report.EmployeeReport{
		Subscription:    sub,
		IsActive:        &isActive,
		Activity:        activity,
		PaymentHistory:  history,
		TotalAmountPaid: total,
	}, nil
}
