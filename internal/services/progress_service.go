package services

import (
	"context"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/analytics"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/progress"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/errors"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
)

// ProgressServiceImpl implements progress.Service
type ProgressServiceImpl struct {
	progRepo progress.Repository
	empRepo  employee.Repository
	logger   *logger.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(progRepo progress.Repository, empRepo employee.Repository, log *logger.Logger) progress.Service {
	return &ProgressServiceImpl{progRepo: progRepo, empRepo: empRepo, logger: log}
}

// AddEntry appends a progress entry for an employee's client log
func (s *ProgressServiceImpl) AddEntry(ctx context.Context, entry *progress.Entry) (int64, error) {
	if entry.EmployeeID == 0 {
		return 0, errors.BadRequest("Employee ID is required")
	}
	if _, err := s.empRepo.GetByID(ctx, entry.EmployeeID); err != nil {
		return 0, err
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}

	id, err := s.progRepo.Create(ctx, entry)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(map[string]interface{}{
		"employee_id": entry.EmployeeID,
		"client":      entry.ClientName,
	}).Debug("Added progress entry")

	return id, nil
}

// Entries retrieves an employee's progress log, oldest first
func (s *ProgressServiceImpl) Entries(ctx context.Context, employeeID int64) ([]*progress.Entry, error) {
	return s.progRepo.ListByEmployee(ctx, employeeID)
}

// Report aggregates an employee's progress log into Stats
func (s *ProgressServiceImpl) Report(ctx context.Context, employeeID int64) (progress.Stats, error) {
	entries, err := s.progRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return progress.Stats{}, err
	}
	return analytics.ComputeUserProgress(entries), nil
}
