package payment

import "context"

// Repository defines the interface for payment data access
type Repository interface {
	// Create appends a payment record
	Create(ctx context.Context, rec *Record) (int64, error)

	// ListByEmployee retrieves an employee's payment history, newest first
	ListByEmployee(ctx context.Context, employeeID int64) ([]*Record, error)

	// TotalByEmployee sums the completed payment amounts for an employee
	TotalByEmployee(ctx context.Context, employeeID int64) (float64, error)
}
