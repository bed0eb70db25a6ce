package employee

import "context"

// Repository defines the interface for employee data access
type Repository interface {
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

	// GetActivity retrieves the activity snapshot for an employee.
	// Returns (nil, nil) when no snapshot has been recorded yet.
	GetActivity(ctx context.Context, employeeID int64) (*ActivityMetrics, error)

	// UpsertActivity records or replaces the activity snapshot for an employee
	UpsertActivity(ctx context.Context, metrics *ActivityMetrics) error
}
