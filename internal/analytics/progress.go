package analytics

import (
	"math"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/progress"
)

// TotalDays is the assumed plan period for completion percentage.
// Completion is always measured against this constant, not against
// how many days were actually recorded: an employee whose client
// logged 5 days, all active, completed 17% of the plan, not 100%.
const TotalDays = 30

// ComputeUserProgress reduces one employee's daily progress log into
// compliance and completion metrics. A day counts as active when
// either the workout was completed or the meal plan was followed.
// Empty logs produce zeroed percentages, never a division by zero.
func ComputeUserProgress(entries []*progress.Entry) progress.Stats {
	var activeDays, workoutDays, mealDays int
	for _, e := range entries {
		if e == nil {
			continue
		}
		if e.WorkoutCompleted || e.MealPlanFollowed {
			activeDays++
		}
		if e.WorkoutCompleted {
			workoutDays++
		}
		if e.MealPlanFollowed {
			mealDays++
		}
	}

	skipped := TotalDays - activeDays
	if skipped < 0 {
		skipped = 0
	}

	stats := progress.Stats{
		ActiveDays:           activeDays,
		SkippedDays:          skipped,
		CompletionPercentage: roundPercent(activeDays, TotalDays),
		CaloriesCompliance:   roundPercent(mealDays, len(entries)),
		WorkoutCompliance:    roundPercent(workoutDays, len(entries)),
	}
	stats.Activity = progress.ActivitySplit{
		ActiveDays:  stats.ActiveDays,
		SkippedDays: stats.SkippedDays,
	}
	stats.Compliance = progress.ComplianceSplit{
		Compliant:    stats.CaloriesCompliance,
		NonCompliant: 100 - stats.CaloriesCompliance,
	}
	return stats
}

// roundPercent returns round(n/d*100), or 0 for an empty denominator
func roundPercent(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(d) * 100))
}
