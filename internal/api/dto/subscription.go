package dto

import "time"

// SetSubscriptionRequest creates or replaces an employee's subscription
type SetSubscriptionRequest struct {
	PlanName       string     `json:"plan_name" validate:"required"`
	DurationDays   int        `json:"duration_days,omitempty" validate:"gte=0"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Status         string     `json:"status,omitempty"`
}

// RecordPaymentRequest appends a payment to an employee's history
type RecordPaymentRequest struct {
	Type   string     `json:"type" validate:"required,oneof=subscription renewal upgrade"`
	Amount float64    `json:"amount" validate:"gte=0"`
	Date   *time.Time `json:"date,omitempty"`
	Status string     `json:"status,omitempty" validate:"omitempty,oneof=completed pending"`
}
