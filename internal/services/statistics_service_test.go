package services

import (
	"context"
	"testing"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
	"github.com/malakyounes2004-ai/fitfix/internal/testutil"
)

var testClock = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

func seedEmployee(t *testing.T, repo *testutil.MockEmployeeRepository, name string) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), &employee.Employee{
		DisplayName: name,
		Email:       name + "@fitfix.test",
		Role:        employee.RoleCoach,
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return id
}

func TestStatisticsService_Global(t *testing.T) {
	empRepo := testutil.NewMockEmployeeRepository()
	subRepo := testutil.NewMockSubscriptionRepository()

	aliceID := seedEmployee(t, empRepo, "alice")
	bobID := seedEmployee(t, empRepo, "bob")
	seedEmployee(t, empRepo, "carol") // no subscription

	future := testClock.AddDate(0, 0, 20)
	soon := testClock.Add(3 * 24 * time.Hour)

	mustUpsert := func(sub *subscription.Subscription) {
		if _, err := subRepo.Upsert(context.Background(), sub); err != nil {
			t.Fatalf("seed subscription: %v", err)
		}
	}
	mustUpsert(&subscription.Subscription{
		EmployeeID:     aliceID,
		PlanName:       "Gold",
		Status:         subscription.StatusActive,
		ExpirationDate: &future,
		TotalPayments:  300,
	})
	mustUpsert(&subscription.Subscription{
		EmployeeID:     bobID,
		PlanName:       "Gold",
		Status:         subscription.StatusActive,
		ExpirationDate: &soon,
		TotalPayments:  150,
	})

	svc := NewStatisticsService(empRepo, subRepo, testLogger()).(*StatisticsServiceImpl)
	svc.nowFn = func() time.Time { return testClock }

	stats, err := svc.Global(context.Background())
	if err != nil {
		t.Fatalf("Global() error: %v", err)
	}

	if stats.TotalEmployees != 3 {
		t.Errorf("TotalEmployees = %d, want 3", stats.TotalEmployees)
	}
	if stats.ActiveSubscriptions != 2 {
		t.Errorf("ActiveSubscriptions = %d, want 2", stats.ActiveSubscriptions)
	}
	if stats.ExpiredSubscriptions != 0 {
		t.Errorf("ExpiredSubscriptions = %d, want 0", stats.ExpiredSubscriptions)
	}
	if stats.ExpiringSoon != 1 {
		t.Errorf("ExpiringSoon = %d, want 1", stats.ExpiringSoon)
	}
	if stats.TotalRevenue != 450 {
		t.Errorf("TotalRevenue = %v, want 450", stats.TotalRevenue)
	}
	if stats.MostPopularPlan != "Gold" {
		t.Errorf("MostPopularPlan = %q, want Gold", stats.MostPopularPlan)
	}
}

func TestStatisticsService_GlobalEmptyFleet(t *testing.T) {
	empRepo := testutil.NewMockEmployeeRepository()
	subRepo := testutil.NewMockSubscriptionRepository()

	svc := NewStatisticsService(empRepo, subRepo, testLogger()).(*StatisticsServiceImpl)
	svc.nowFn = func() time.Time { return testClock }

	stats, err := svc.Global(context.Background())
	if err != nil {
		t.Fatalf("Global() error: %v", err)
	}
	if stats.TotalEmployees != 0 {
		t.Errorf("TotalEmployees = %d, want 0", stats.TotalEmployees)
	}
	if stats.MostPopularPlan != "N/A" {
		t.Errorf("MostPopularPlan = %q, want N/A", stats.MostPopularPlan)
	}
}
