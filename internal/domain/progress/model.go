package progress

import "time"

// Entry is one tracked day for a client managed by an employee
type Entry struct {
	ID               int64     `json:"id"`
	EmployeeID       int64     `json:"employee_id"`
	ClientName       string    `json:"client_name,omitempty"`
	Date             time.Time `json:"date"`
	WorkoutCompleted bool      `json:"workout_completed"`
	MealPlanFollowed bool      `json:"meal_plan_followed"`
	CreatedAt        time.Time `json:"created_at"`
}

// Stats is the aggregated progress view for one employee's log.
//
// CompletionPercentage is measured against the assumed 30-day plan
// period, not against the number of recorded entries, while the two
// compliance percentages are measured against recorded entries. The
// asymmetry is a product decision and is relied on by the dashboard.
type Stats struct {
	ActiveDays           int             `json:"active_days"`
	SkippedDays          int             `json:"skipped_days"`
	CompletionPercentage int             `json:"completion_percentage"`
	CaloriesCompliance   int             `json:"calories_compliance"`
	WorkoutCompliance    int             `json:"workout_compliance"`
	Activity             ActivitySplit   `json:"activity"`
	Compliance           ComplianceSplit `json:"compliance"`
}

// ActivitySplit is the two-slice active/skipped breakdown fed to charts
type ActivitySplit struct {
	ActiveDays  int `json:"active_days"`
	SkippedDays int `json:"skipped_days"`
}

// ComplianceSplit is the two-slice meal-compliance breakdown fed to charts
type ComplianceSplit struct {
	Compliant    int `json:"compliant"`
	NonCompliant int `json:"non_compliant"`
}
