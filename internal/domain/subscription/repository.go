package subscription

import "context"

// Repository defines the interface for subscription data access
type Repository interface {
	// Upsert creates or replaces the subscription for an employee
	Upsert(ctx context.Context, sub *Subscription) (int64, error)

	// GetByEmployee retrieves an employee's subscription.
	// Returns (nil, nil) when the employee has no subscription.
	GetByEmployee(ctx context.Context, employeeID int64) (*Subscription, error)

	// Delete removes an employee's subscription
	Delete(ctx context.Context, employeeID int64) error

	// ListAll retrieves every subscription keyed by employee ID,
	// used by the fleet statistics aggregation
	ListAll(ctx context.Context) (map[int64]*Subscription, error)

	// UpdateTotalPayments sets the cached payment total for an employee's subscription
	UpdateTotalPayments(ctx context.Context, employeeID int64, total float64) error
}
