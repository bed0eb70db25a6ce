package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/recommendation"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/report"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func activeEmployee() *employee.Employee {
	return &employee.Employee{ID: 1, DisplayName: "Sam Reed", IsActive: true}
}

func recentActivity(users, meals, workouts int) *employee.ActivityMetrics {
	login := testNow.Add(-2 * 24 * time.Hour)
	return &employee.ActivityMetrics{
		UsersManaged:        users,
		MealPlansCreated:    meals,
		WorkoutPlansCreated: workouts,
		LastLogin:           &login,
	}
}

func activeSub(plan string, expiresIn time.Duration, paid float64) *subscription.Subscription {
	exp := testNow.Add(expiresIn)
	return &subscription.Subscription{
		PlanName:       plan,
		Status:         subscription.StatusActive,
		ExpirationDate: &exp,
		TotalPayments:  paid,
	}
}

func titles(recs []recommendation.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestEvaluateRecommendations(t *testing.T) {
	tests := []struct {
		name       string
		input      RuleInput
		wantTitles []string
		wantTypes  []string
	}{
		{
			name: "fresh account without subscription fires only the subscription rule",
			input: RuleInput{
				Employee: activeEmployee(),
				Report:   &report.EmployeeReport{Activity: recentActivity(0, 0, 0)},
				Now:      testNow,
			},
			// The new-employee rule stays silent because the missing
			// subscription already surfaced as a warning above it.
			wantTitles: []string{"No Active Subscription"},
			wantTypes:  []string{recommendation.TypeWarning},
		},
		{
			name: "subscribed account with zero counters and a recent login is new",
			input: RuleInput{
				Employee: activeEmployee(),
				Report: &report.EmployeeReport{
					Subscription: activeSub("Gold", 90*24*time.Hour, 500),
					Activity:     recentActivity(0, 0, 0),
				},
				Now: testNow,
			},
			wantTitles: []string{"New Employee - Training Recommended"},
			wantTypes:  []string{recommendation.TypeInfo},
		},
		{
			name: "expired by date while status still says active",
			input: RuleInput{
				Employee: activeEmployee(),
				Report: &report.EmployeeReport{
					Subscription: activeSub("Gold", -24*time.Hour, 500),
					Activity:     recentActivity(3, 2, 2),
				},
				Now: testNow,
			},
			wantTitles: []string{"Subscription Expired"},
			wantTypes:  []string{recommendation.TypeUrgent},
		},
		{
			name: "expiring within a week",
			input: RuleInput{
				Employee: activeEmployee(),
				Report: &report.EmployeeReport{
					Subscription: activeSub("Gold", 5*24*time.Hour, 500),
					Activity:     recentActivity(3, 2, 2),
				},
				Now: testNow,
			},
			wantTitles: []string{"Subscription Expiring Soon"},
			wantTypes:  []string{recommendation.TypeWarning},
		},
		{
			name: "renewal reminder between eight and fourteen days",
			input: RuleInput{
				Employee: activeEmployee(),
				Report: &report.EmployeeReport{
					Subscription: activeSub("Gold", 10*24*time.Hour, 500),
					Activity:     recentActivity(3, 2, 2),
				},
				Now: testNow,
			},
			wantTitles: []string{"Subscription Renewal Reminder"},
			wantTypes:  []string{recommendation.TypeInfo},
		},
		{
			name: "subscription without expiration date is a silent no-op for rule one",
			input: RuleInput{
				Employee: activeEmployee(),
				Report: &report.EmployeeReport{
					Subscription: &subscription.Subscription{PlanName: "Gold", Status: subscription.StatusActive, TotalPayments: 100},
					Activity:     recentActivity(3, 2, 2),
				},
				Now: testNow,
			},
			wantTitles: nil,
			wantTypes:  nil,
		},
		{
			name: "high activity on a basic plan suggests an upgrade",
			input: RuleInput{
				Employee: activeEmployee(),
				Report: &report.EmployeeReport{
					Subscription: activeSub("Gold", 90*24*time.Hour, 500),
					Activity:     recentActivity(12, 4, 3),
				},
				Now: testNow,
			},
			wantTitles: []string{"High Activity Employee", "Upgrade Opportunity"},
			wantTypes:  []string{recommendation.TypeSuccess, recommendation.TypeInfo},
		},
		{
			name: "premium plan suppresses the upgrade suggestion",
			input: RuleInput{
				Employee: activeEmployee(),
				Report: &report.EmployeeReport{
					Subscription: activeSub("Premium Plus", 90*24*time.Hour, 500),
					Activity:     recentActivity(12, 4, 3),
				},
				Now: testNow,
			},
			wantTitles: []string{"High Activity Employee"},
			wantTypes:  []string{recommendation.TypeSuccess},
		},
		{
			name: "pro plan suppresses the upgrade suggestion case-insensitively",
			input: RuleInput{
				Employee: activeEmployee(),
				Report: &report.EmployeeReport{
					Subscription: activeSub("PRO Annual", 90*24*time.Hour, 500),
					Activity:     recentActivity(0, 20, 15),
				},
				Now: testNow,
			},
			wantTitles: []string{"High Activity Employee"},
			wantTypes:  []string{recommendation.TypeSuccess},
		},
		{
			name: "active subscription without payments needs verification",
			input: RuleInput{
				Employee: activeEmployee(),
				Report: &report.EmployeeReport{
					Subscription: activeSub("Gold", 90*24*time.Hour, 0),
					Activity:     recentActivity(3, 2, 2),
				},
				Now: testNow,
			},
			wantTitles: []string{"Payment Verification Needed"},
			wantTypes:  []string{recommendation.TypeWarning},
		},
		{
			name: "disabled account",
			input: RuleInput{
				Employee: &employee.Employee{ID: 2, IsActive: false},
				Report: &report.EmployeeReport{
					Subscription: activeSub("Gold", 90*24*time.Hour, 500),
					Activity:     recentActivity(3, 2, 2),
				},
				Now: testNow,
			},
			wantTitles: []string{"Account Disabled"},
			wantTypes:  []string{recommendation.TypeInfo},
		},
		{
			name: "inactive employee does not also count as new",
			input: RuleInput{
				Employee: activeEmployee(),
				Report: &report.EmployeeReport{
					Subscription: activeSub("Gold", 90*24*time.Hour, 500),
				},
				Now: testNow,
			},
			wantTitles: []string{"Inactive Employee"},
			wantTypes:  []string{recommendation.TypeWarning},
		},
		{
			name: "good standing produces no recommendations",
			input: RuleInput{
				Employee: activeEmployee(),
				Report: &report.EmployeeReport{
					Subscription: activeSub("Premium", 90*24*time.Hour, 500),
					Activity:     recentActivity(3, 2, 2),
				},
				Now: testNow,
			},
			wantTitles: nil,
			wantTypes:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRecommendations(tt.input)

			if len(got) != len(tt.wantTitles) {
				t.Fatalf("EvaluateRecommendations() returned %d items %v, want %d %v",
					len(got), titles(got), len(tt.wantTitles), tt.wantTitles)
			}
			for i, rec := range got {
				if rec.Title != tt.wantTitles[i] {
					t.Errorf("item %d title = %q, want %q", i, rec.Title, tt.wantTitles[i])
				}
				if rec.Type != tt.wantTypes[i] {
					t.Errorf("item %d type = %q, want %q", i, rec.Type, tt.wantTypes[i])
				}
			}
		})
	}
}

func TestEvaluateRecommendationsOrderAndIdempotence(t *testing.T) {
	// Force as many rules as possible to fire at once and assert the
	// fixed display order: output is never re-sorted by severity.
	login := testNow.Add(-60 * 24 * time.Hour)
	in := RuleInput{
		Employee: &employee.Employee{ID: 3, IsActive: false},
		Report: &report.EmployeeReport{
			Subscription: activeSub("Gold", 3*24*time.Hour, 0),
			Activity: &employee.ActivityMetrics{
				UsersManaged:        15,
				MealPlansCreated:    20,
				WorkoutPlansCreated: 12,
				LastLogin:           &login,
			},
		},
		Now: testNow,
	}

	want := []string{
		"Subscription Expiring Soon",
		"Account Disabled",
		"Inactive Employee",
		"High Activity Employee",
		"Upgrade Opportunity",
		"Payment Verification Needed",
	}

	first := EvaluateRecommendations(in)
	if !reflect.DeepEqual(titles(first), want) {
		t.Fatalf("order = %v, want %v", titles(first), want)
	}

	second := EvaluateRecommendations(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("engine is not idempotent: first %+v, second %+v", first, second)
	}
}

func TestEvaluateRecommendationsNilReport(t *testing.T) {
	got := EvaluateRecommendations(RuleInput{Employee: activeEmployee(), Now: testNow})

	// No subscription and no activity: missing-subscription warning,
	// then the inactivity warning for the absent login.
	want := []string{"No Active Subscription", "Inactive Employee"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("titles = %v, want %v", titles(got), want)
	}
}
