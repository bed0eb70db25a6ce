package services

import (
	"context"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/errors"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
)

// EmployeeServiceImpl implements employee.Service
type EmployeeServiceImpl struct {
	repo   employee.Repository
	logger *logger.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo employee.Repository, log *logger.Logger) employee.Service {
	return &EmployeeServiceImpl{repo: repo, logger: log}
}

// Create creates a new employee account
func (s *EmployeeServiceImpl) Create(ctx context.Context, emp *employee.Employee) (int64, error) {
	if emp.Email == "" {
		return 0, errors.BadRequest("Email is required")
	}
	if emp.Role == "" {
		emp.Role = employee.RoleCoach
	}

	id, err := s.repo.Create(ctx, emp)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(map[string]interface{}{
		"employee_id": id,
		"email":       emp.Email,
	}).Info("Created employee")

	return id, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

// Update updates an employee
func (s *EmployeeServiceImpl) Update(ctx context.Context, emp *employee.Employee) error {
	if emp.ID == 0 {
		return errors.BadRequest("Employee ID is required")
	}
	return s.repo.Update(ctx, emp)
}

// Delete deletes an employee
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.With("employee_id", id).Info("Deleted employee")
	return nil
}

// List retrieves employees with filters and pagination
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter, limit, offset int) ([]*employee.Employee, int64, error) {
	return s.repo.List(ctx, filter, limit, offset)
}

// GetActivity retrieves the activity snapshot for an employee
func (s *EmployeeServiceImpl) GetActivity(ctx context.Context, employeeID int64) (*employee.ActivityMetrics, error) {
	return s.repo.GetActivity(ctx, employeeID)
}

// RecordActivity records or replaces the activity snapshot for an employee
func (s *EmployeeServiceImpl) RecordActivity(ctx context.Context, metrics *employee.ActivityMetrics) error {
	if metrics.EmployeeID == 0 {
		return errors.BadRequest("Employee ID is required")
	}
	// Reject snapshots for unknown employees up front
	if _, err := s.repo.GetByID(ctx, metrics.EmployeeID); err != nil {
		return err
	}
	return s.repo.UpsertActivity(ctx, metrics)
}
