package subscription

import "time"

// Subscription represents an employee's plan enrollment.
// An employee has at most one subscription; its absence is a valid state.
// Status and ExpirationDate are independent: a subscription can carry
// status "active" while its expiration date is already in the past.
type Subscription struct {
	ID             int64      `json:"id"`
	EmployeeID     int64      `json:"employee_id"`
	PlanName       string     `json:"plan_name"`
	DurationDays   int        `json:"duration_days"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Status         string     `json:"status"`
	TotalPayments  float64    `json:"total_payments"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at,omitempty"`
}

// Subscription statuses. Status is free text in storage; only these
// two values carry meaning for analytics.
const (
	StatusActive  = "active"
	StatusExpired = "expired"
)
