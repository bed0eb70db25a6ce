package employee

import "time"

// Employee represents a coach account managed by the admin dashboard
type Employee struct {
	ID          int64     `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// ActivityMetrics is a snapshot of an employee's platform activity.
// Counters are maintained by the product backend; this service only reads them.
type ActivityMetrics struct {
	EmployeeID          int64      `json:"employee_id"`
	UsersManaged        int        `json:"users_managed"`
	MealPlansCreated    int        `json:"meal_plans_created"`
	WorkoutPlansCreated int        `json:"workout_plans_created"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	ChatMessages        int        `json:"chat_messages"`
	TotalSessions       int        `json:"total_sessions"`
}

// Roles
const (
	RoleCoach   = "coach"
	RoleManager = "manager"
)

// Filter contains employee filtering options
type Filter struct {
	Role   string
	Active *bool
	Search string
}
