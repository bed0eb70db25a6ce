package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/recommendation"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/report"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/statistics"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
)

// InactivityDays is the login-age threshold beyond which an employee
// counts as inactive.
const InactivityDays = 30

// High-activity thresholds
const (
	HighActivityClients = 10
	HighActivityPlans   = 30
)

// RuleInput carries everything the rule engine may inspect for one
// account. Report must never be nil; Stats is the current fleet view.
type RuleInput struct {
	Employee *employee.Employee
	Report   *report.EmployeeReport
	Stats    statistics.GlobalStatistics
	Now      time.Time
}

// rule inspects one account and emits at most one recommendation
type rule func(in RuleInput) *recommendation.Recommendation

// rules run in display order. Each contributes zero or one items and
// the output is never re-sorted, so this slice fixes what the admin
// sees and in what sequence.
var rules = []rule{
	subscriptionExpiryRule,
	accountDisabledRule,
	inactivityRule,
	highActivityRule,
	newEmployeeRule,
	upgradeOpportunityRule,
	paymentVerificationRule,
}

// EvaluateRecommendations runs every rule in order against one
// account. The engine is pure and idempotent: identical inputs yield
// identical, order-stable output, and an empty result is the normal
// "good standing" state.
func EvaluateRecommendations(in RuleInput) []recommendation.Recommendation {
	if in.Report == nil {
		in.Report = &report.EmployeeReport{}
	}

	recs := make([]recommendation.Recommendation, 0, len(rules))
	for _, r := range rules {
		if rec := r(in); rec != nil {
			recs = append(recs, *rec)
		}
	}
	return recs
}

// subscriptionExpiryRule grades the time remaining on the
// subscription. The expiration date is trusted over the stored status,
// so a subscription marked active but already past its date still
// reports as expired. A subscription that exists without an expiration
// date fires neither branch.
func subscriptionExpiryRule(in RuleInput) *recommendation.Recommendation {
	sub := in.Report.Subscription
	if sub == nil {
		return &recommendation.Recommendation{
			Type:    recommendation.TypeWarning,
			Title:   "No Active Subscription",
			Message: "This employee has no subscription on file.",
			Action:  "Assign a subscription plan",
		}
	}

	days, known := DaysUntil(in.Now, sub.ExpirationDate)
	if !known {
		return nil
	}

	switch {
	case days <= 0:
		return &recommendation.Recommendation{
			Type:    recommendation.TypeUrgent,
			Title:   "Subscription Expired",
			Message: fmt.Sprintf("The %s subscription expired %d days ago.", sub.PlanName, -days),
			Action:  "Renew the subscription immediately",
		}
	case days <= ExpiringSoonDays:
		return &recommendation.Recommendation{
			Type:    recommendation.TypeWarning,
			Title:   "Subscription Expiring Soon",
			Message: fmt.Sprintf("The %s subscription expires in %d days.", sub.PlanName, days),
			Action:  "Contact the employee about renewal",
		}
	case days <= 2*ExpiringSoonDays:
		return &recommendation.Recommendation{
			Type:    recommendation.TypeInfo,
			Title:   "Subscription Renewal Reminder",
			Message: fmt.Sprintf("The %s subscription expires in %d days.", sub.PlanName, days),
			Action:  "Schedule a renewal reminder",
		}
	}
	return nil
}

func accountDisabledRule(in RuleInput) *recommendation.Recommendation {
	disabled := in.Employee != nil && !in.Employee.IsActive
	if in.Report.IsActive != nil && !*in.Report.IsActive {
		disabled = true
	}
	if !disabled {
		return nil
	}
	return &recommendation.Recommendation{
		Type:    recommendation.TypeInfo,
		Title:   "Account Disabled",
		Message: "This account is currently disabled and cannot access the platform.",
		Action:  "Re-enable the account if this is unintended",
	}
}

func inactivityRule(in RuleInput) *recommendation.Recommendation {
	if !isInactive(in.Report, in.Now) {
		return nil
	}

	msg := "This employee has never logged in."
	if act := in.Report.Activity; act != nil && act.LastLogin != nil {
		msg = fmt.Sprintf("Last login was %d days ago.", DaysBetween(*act.LastLogin, in.Now))
	}
	return &recommendation.Recommendation{
		Type:    recommendation.TypeWarning,
		Title:   "Inactive Employee",
		Message: msg,
		Action:  "Reach out to re-engage the employee",
	}
}

func highActivityRule(in RuleInput) *recommendation.Recommendation {
	act := in.Report.Activity
	if !isHighActivity(act) {
		return nil
	}
	return &recommendation.Recommendation{
		Type:  recommendation.TypeSuccess,
		Title: "High Activity Employee",
		Message: fmt.Sprintf("Managing %d clients with %d plans created.",
			act.UsersManaged, act.MealPlansCreated+act.WorkoutPlansCreated),
	}
}

// newEmployeeRule fires for accounts with no activity at all that are
// not already flagged inactive: a recent login with zero counters
// means a fresh account, not a dormant one. An account with no
// subscription is covered by the missing-subscription warning instead
// and never reported as new on top of it.
func newEmployeeRule(in RuleInput) *recommendation.Recommendation {
	if in.Report.Subscription == nil {
		return nil
	}
	act := in.Report.Activity
	usersManaged, plans := 0, 0
	if act != nil {
		usersManaged = act.UsersManaged
		plans = act.MealPlansCreated + act.WorkoutPlansCreated
	}
	if usersManaged != 0 || plans != 0 || isInactive(in.Report, in.Now) {
		return nil
	}
	return &recommendation.Recommendation{
		Type:    recommendation.TypeInfo,
		Title:   "New Employee - Training Recommended",
		Message: "No clients or plans yet. Onboarding training may help this employee get started.",
		Action:  "Schedule onboarding training",
	}
}

func upgradeOpportunityRule(in RuleInput) *recommendation.Recommendation {
	sub := in.Report.Subscription
	if sub == nil || sub.Status != subscription.StatusActive {
		return nil
	}
	if !isHighActivity(in.Report.Activity) {
		return nil
	}
	plan := strings.ToLower(sub.PlanName)
	if strings.Contains(plan, "premium") || strings.Contains(plan, "pro") {
		return nil
	}
	return &recommendation.Recommendation{
		Type:    recommendation.TypeInfo,
		Title:   "Upgrade Opportunity",
		Message: fmt.Sprintf("High usage on the %s plan. A premium plan may fit better.", sub.PlanName),
		Action:  "Suggest a plan upgrade",
	}
}

func paymentVerificationRule(in RuleInput) *recommendation.Recommendation {
	sub := in.Report.Subscription
	if sub == nil || sub.Status != subscription.StatusActive || sub.TotalPayments != 0 {
		return nil
	}
	return &recommendation.Recommendation{
		Type:    recommendation.TypeWarning,
		Title:   "Payment Verification Needed",
		Message: "Subscription is active but no payments have been recorded.",
		Action:  "Verify the payment records",
	}
}

// isInactive reports whether the account has no known login or a login
// older than InactivityDays. A missing activity snapshot counts as
// never having logged in.
func isInactive(rep *report.EmployeeReport, now time.Time) bool {
	act := rep.Activity
	if act == nil || act.LastLogin == nil {
		return true
	}
	return DaysBetween(*act.LastLogin, now) > InactivityDays
}

func isHighActivity(act *employee.ActivityMetrics) bool {
	if act == nil {
		return false
	}
	return act.UsersManaged >= HighActivityClients ||
		act.MealPlansCreated+act.WorkoutPlansCreated >= HighActivityPlans
}
