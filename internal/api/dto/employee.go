package dto

import "time"

// CreateEmployeeRequest represents an employee creation request
type CreateEmployeeRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role,omitempty" validate:"omitempty,oneof=coach manager"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// UpdateEmployeeRequest represents an employee update request.
// Nil fields are left unchanged.
type UpdateEmployeeRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=coach manager"`
	IsActive    *bool   `json:"is_active,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// ActivityRequest records an employee's platform activity snapshot
type ActivityRequest struct {
	UsersManaged        int        `json:"users_managed" validate:"gte=0"`
	MealPlansCreated    int        `json:"meal_plans_created" validate:"gte=0"`
	WorkoutPlansCreated int        `json:"workout_plans_created" validate:"gte=0"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	ChatMessages        int        `json:"chat_messages" validate:"gte=0"`
	TotalSessions       int        `json:"total_sessions" validate:"gte=0"`
}
