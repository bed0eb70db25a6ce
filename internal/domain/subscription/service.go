package subscription

import (
	"context"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/payment"
)

// Service defines the interface for subscription and billing logic
type Service interface {
	// Set creates or replaces the subscription for an employee
	Set(ctx context.Context, sub *Subscription) (int64, error)

	// Get retrieves an employee's subscription; nil when absent
	Get(ctx context.Context, employeeID int64) (*Subscription, error)

	// Cancel removes an employee's subscription
	Cancel(ctx context.Context, employeeID int64) error

	// RecordPayment appends a payment and refreshes the cached
	// subscription payment total
	RecordPayment(ctx context.Context, rec *payment.Record) (int64, error)

	// Payments retrieves an employee's payment history, newest first
	Payments(ctx context.Context, employeeID int64) ([]*payment.Record, error)
}
