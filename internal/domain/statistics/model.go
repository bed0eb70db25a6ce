package statistics

// GlobalStatistics holds fleet-wide KPIs over all employee accounts.
// It is recomputed from scratch on every request and never persisted.
type GlobalStatistics struct {
	TotalEmployees       int     `json:"total_employees"`
	ActiveSubscriptions  int     `json:"active_subscriptions"`
	ExpiredSubscriptions int     `json:"expired_subscriptions"`
	TotalRevenue         float64 `json:"total_revenue"`
	ExpiringSoon         int     `json:"expiring_soon"`
	MostPopularPlan      string  `json:"most_popular_plan"`
}

// NoPlan is the MostPopularPlan sentinel reported when no employee
// has a subscription.
const NoPlan = "N/A"
