package dto

import "time"

// AddProgressEntryRequest appends one day to a client progress log
type AddProgressEntryRequest struct {
	ClientName       string     `json:"client_name,omitempty"`
	Date             *time.Time `json:"date,omitempty"`
	WorkoutCompleted bool       `json:"workout_completed"`
	MealPlanFollowed bool       `json:"meal_plan_followed"`
}
