package recommendation

import "context"

// Service defines the interface for recommendation business logic
type Service interface {
	// ForEmployee evaluates the rule engine for one employee and
	// returns the resulting recommendations in display order
	ForEmployee(ctx context.Context, employeeID int64) ([]Recommendation, error)
}
