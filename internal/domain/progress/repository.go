package progress

import "context"

// Repository defines the interface for progress data access
type Repository interface {
	// Create appends a progress entry
	Create(ctx context.Context, entry *Entry) (int64, error)

	// ListByEmployee retrieves an employee's progress log, oldest first
	ListByEmployee(ctx context.Context, employeeID int64) ([]*Entry, error)

	// DeleteByEmployee removes all progress entries for an employee
	DeleteByEmployee(ctx context.Context, employeeID int64) error
}
