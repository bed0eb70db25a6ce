package employee

import "context"

// Service defines the interface for employee business logic
type Service interface {
	// Create creates a new employee
	Create(ctx context.Context, emp *Employee) (int64, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id int64) (*Employee, error)

	// Update updates an employee
	Update(ctx context.Context, emp *Employee) error

	// Delete deletes an employee
	Delete(ctx context.Context, id int64) error

	// List retrieves employees with filters and pagination
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Employee, int64, error)

	// GetActivity retrieves the activity snapshot for an employee
	GetActivity(ctx context.Context, employeeID int64) (*ActivityMetrics, error)

	// RecordActivity records or replaces the activity snapshot for an employee
	RecordActivity(ctx context.Context, metrics *ActivityMetrics) error
}
