package client

import "time"

// Employee represents a coach or manager account
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

// Subscription represents an employee's subscription plan
type Subscription struct {
	ID             int64      `json:"id"`
	EmployeeID     int64      `json:"employee_id"`
	PlanName       string     `json:"plan_name"`
	DurationDays   int        `json:"duration_days,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Status         string     `json:"status"`
	TotalPayments  float64    `json:"total_payments"`
}

// Payment represents one payment record
type Payment struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Type       string    `json:"type"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

// ActivityMetrics is an employee's platform activity snapshot
type ActivityMetrics struct {
	EmployeeID          int64      `json:"employee_id"`
	UsersManaged        int        `json:"users_managed"`
	MealPlansCreated    int        `json:"meal_plans_created"`
	WorkoutPlansCreated int        `json:"workout_plans_created"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	ChatMessages        int        `json:"chat_messages"`
	TotalSessions       int        `json:"total_sessions"`
}

// ProgressEntry is one day in a client progress log
type ProgressEntry struct {
	ID               int64     `json:"id"`
	EmployeeID       int64     `json:"employee_id"`
	ClientName       string    `json:"client_name,omitempty"`
	Date             time.Time `json:"date"`
	WorkoutCompleted bool      `json:"workout_completed"`
	MealPlanFollowed bool      `json:"meal_plan_followed"`
}

// ProgressStats aggregates a progress log into completion metrics
type ProgressStats struct {
	ActiveDays           int `json:"active_days"`
	SkippedDays          int `json:"skipped_days"`
	CompletionPercentage int `json:"completion_percentage"`
	CaloriesCompliance   int `json:"calories_compliance"`
	WorkoutCompliance    int `json:"workout_compliance"`
	Activity             struct {
		ActiveDays  int `json:"active_days"`
		SkippedDays int `json:"skipped_days"`
	} `json:"activity"`
	Compliance struct {
		Compliant    int `json:"compliant"`
		NonCompliant int `json:"non_compliant"`
	} `json:"compliance"`
}

// GlobalStatistics holds fleet-wide KPIs
type GlobalStatistics struct {
	TotalEmployees       int     `json:"total_employees"`
	ActiveSubscriptions  int     `json:"active_subscriptions"`
	ExpiredSubscriptions int     `json:"expired_subscriptions"`
	TotalRevenue         float64 `json:"total_revenue"`
	ExpiringSoon         int     `json:"expiring_soon"`
	MostPopularPlan      string  `json:"most_popular_plan"`
}

// Recommendation is one rule engine finding for an employee
type Recommendation struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// EmployeeReport is the aggregate account view
type EmployeeReport struct {
	Subscription    *Subscription    `json:"subscription,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
	Activity        *ActivityMetrics `json:"activity,omitempty"`
	PaymentHistory  []Payment        `json:"payment_history,omitempty"`
	TotalAmountPaid float64          `json:"total_amount_paid"`
}

// PaginatedEmployees is a page of employee results
type PaginatedEmployees struct {
	Data       []Employee `json:"data"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalItems int64      `json:"total_items"`
	TotalPages int        `json:"total_pages"`
}

// HealthResponse is the liveness probe payload
type HealthResponse struct {
	Status string `json:"status"`
}
