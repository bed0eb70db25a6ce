package analytics

import (
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/statistics"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
)

// AccountRecord pairs an employee with its subscription, if any
type AccountRecord struct {
	Employee     *employee.Employee
	Subscription *subscription.Subscription
}

// ExpiringSoonDays is the window for the "expiring soon" KPI:
// subscriptions with 1 to 7 inclusive days remaining.
const ExpiringSoonDays = 7

// ComputeGlobalStatistics reduces the full account collection into
// fleet-wide KPIs. It is a pure reduction: no side effects, and the
// result does not depend on input order except for the documented
// first-seen tie-break on MostPopularPlan.
//
// An account with an unreadable expiration date still counts toward
// TotalEmployees and the status-based tallies; only the date-dependent
// counts exclude it.
func ComputeGlobalStatistics(records []AccountRecord, now time.Time) statistics.GlobalStatistics {
	stats := statistics.GlobalStatistics{MostPopularPlan: statistics.NoPlan}

	planCounts := make(map[string]int)
	var planOrder []string

	for _, rec := range records {
		stats.TotalEmployees++

		sub := rec.Subscription
		if sub == nil {
			continue
		}

		stats.TotalRevenue += sub.TotalPayments

		if _, seen := planCounts[sub.PlanName]; !seen {
			planOrder = append(planOrder, sub.PlanName)
		}
		planCounts[sub.PlanName]++

		active := sub.Status == subscription.StatusActive
		if active {
			stats.ActiveSubscriptions++
		}

		days, known := DaysUntil(now, sub.ExpirationDate)
		if !active || (known && days <= 0) {
			stats.ExpiredSubscriptions++
		}
		if active && known && days > 0 && days <= ExpiringSoonDays {
			stats.ExpiringSoon++
		}
	}

	// Mode over plan names; ties go to the plan seen first.
	best := 0
	for _, plan := range planOrder {
		if planCounts[plan] > best {
			best = planCounts[plan]
			stats.MostPopularPlan = plan
		}
	}

	return stats
}
