package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
	"github.com/malakyounes2004-ai/fitfix/internal/testutil"
)

func seedTestEmployee(t *testing.T, repo employee.Repository, email string) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), &employee.Employee{
		DisplayName: "Test Coach",
		Email:       email,
		Role:        employee.RoleCoach,
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return id
}

func TestSubscriptionRepository_UpsertReplacesExisting(t *testing.T) {
	db := testutil.NewTestDB(t)
	empRepo := NewEmployeeRepository(db)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	empID := seedTestEmployee(t, empRepo, "coach@fitfix.test")

	exp := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	if _, err := repo.Upsert(ctx, &subscription.Subscription{
		EmployeeID:     empID,
		PlanName:       "Basic",
		Status:         subscription.StatusActive,
		ExpirationDate: &exp,
	}); err != nil {
		t.Fatalf("first Upsert() error: %v", err)
	}

	if _, err := repo.Upsert(ctx, &subscription.Subscription{
		EmployeeID:    empID,
		PlanName:      "Premium",
		Status:        subscription.StatusActive,
		TotalPayments: 250,
	}); err != nil {
		t.Fatalf("second Upsert() error: %v", err)
	}

	got, err := repo.GetByEmployee(ctx, empID)
	if err != nil {
		t.Fatalf("GetByEmployee() error: %v", err)
	}
	if got.PlanName != "Premium" {
		t.Errorf("PlanName = %q, want Premium", got.PlanName)
	}
	if got.ExpirationDate != nil {
		t.Errorf("ExpirationDate = %v, want nil after replacement", got.ExpirationDate)
	}
	if got.TotalPayments != 250 {
		t.Errorf("TotalPayments = %v, want 250", got.TotalPayments)
	}

	// Still exactly one row for the employee
	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ListAll() = %d rows, want 1", len(all))
	}
}

func TestSubscriptionRepository_GetByEmployeeAbsent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSubscriptionRepository(db)

	sub, err := repo.GetByEmployee(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByEmployee() error: %v", err)
	}
	if sub != nil {
		t.Errorf("GetByEmployee() = %+v, want nil when no row exists", sub)
	}
}

func TestSubscriptionRepository_UpdateTotalPayments(t *testing.T) {
	db := testutil.NewTestDB(t)
	empRepo := NewEmployeeRepository(db)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	empID := seedTestEmployee(t, empRepo, "coach@fitfix.test")
	if _, err := repo.Upsert(ctx, &subscription.Subscription{
		EmployeeID: empID,
		PlanName:   "Gold",
		Status:     subscription.StatusActive,
	}); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}

	if err := repo.UpdateTotalPayments(ctx, empID, 149.98); err != nil {
		t.Fatalf("UpdateTotalPayments() error: %v", err)
	}

	got, err := repo.GetByEmployee(ctx, empID)
	if err != nil {
		t.Fatalf("GetByEmployee() error: %v", err)
	}
	if got.TotalPayments != 149.98 {
		t.Errorf("TotalPayments = %v, want 149.98", got.TotalPayments)
	}
}

func TestSubscriptionRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	empRepo := NewEmployeeRepository(db)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	empID := seedTestEmployee(t, empRepo, "coach@fitfix.test")
	if _, err := repo.Upsert(ctx, &subscription.Subscription{
		EmployeeID: empID,
		PlanName:   "Gold",
		Status:     subscription.StatusActive,
	}); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}

	if err := repo.Delete(ctx, empID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if err := repo.Delete(ctx, empID); err == nil {
		t.Error("Delete() of a missing subscription returned no error")
	}
}
