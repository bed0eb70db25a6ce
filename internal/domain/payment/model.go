package payment

import "time"

// Record represents one historical payment made by an employee.
// The payment log is append-only; records are never updated in place.
type Record struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Type       string    `json:"type"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Payment statuses
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// Payment types
const (
	TypeSubscription = "subscription"
	TypeRenewal      = "renewal"
	TypeUpgrade      = "upgrade"
)
