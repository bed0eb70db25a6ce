package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/testutil"
)

func TestEmployeeRepository_CRUD(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &employee.Employee{
		DisplayName: "Sara Connor",
		Email:       "sara@fitfix.test",
		Role:        employee.RoleCoach,
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got.DisplayName != "Sara Connor" || got.Role != employee.RoleCoach {
		t.Errorf("GetByID() = %+v", got)
	}

	got.DisplayName = "Sara C."
	got.IsActive = false
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	updated, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID() after update error: %v", err)
	}
	if updated.DisplayName != "Sara C." || updated.IsActive {
		t.Errorf("after Update() = %+v", updated)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := repo.GetByID(ctx, id); err == nil {
		t.Error("GetByID() after delete returned no error")
	}
	if err := repo.Delete(ctx, id); err == nil {
		t.Error("Delete() of a missing employee returned no error")
	}
}

func TestEmployeeRepository_ListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	seed := []struct {
		name   string
		email  string
		role   string
		active bool
	}{
		{"Alice Trainer", "alice@fitfix.test", employee.RoleCoach, true},
		{"Bob Manager", "bob@fitfix.test", employee.RoleManager, true},
		{"Carol Trainer", "carol@fitfix.test", employee.RoleCoach, false},
		{"Dave Coach", "dave@fitfix.test", employee.RoleCoach, true},
	}
	for _, s := range seed {
		if _, err := repo.Create(ctx, &employee.Employee{
			DisplayName: s.name,
			Email:       s.email,
			Role:        s.role,
			IsActive:    s.active,
		}); err != nil {
			t.Fatalf("seed %s: %v", s.email, err)
		}
	}

	active := true
	tests := []struct {
		name      string
		filter    employee.Filter
		wantTotal int64
	}{
		{"no filter", employee.Filter{}, 4},
		{"by role", employee.Filter{Role: employee.RoleCoach}, 3},
		{"active coaches", employee.Filter{Role: employee.RoleCoach, Active: &active}, 2},
		{"search by name", employee.Filter{Search: "Trainer"}, 2},
		{"search by email", employee.Filter{Search: "bob@"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emps, total, err := repo.List(ctx, tt.filter, 50, 0)
			if err != nil {
				t.Fatalf("List() error: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("List() total = %d, want %d", total, tt.wantTotal)
			}
			if int64(len(emps)) != tt.wantTotal {
				t.Errorf("List() returned %d rows, want %d", len(emps), tt.wantTotal)
			}
		})
	}

	t.Run("pagination", func(t *testing.T) {
		emps, total, err := repo.List(ctx, employee.Filter{}, 2, 2)
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if total != 4 {
			t.Errorf("List() total = %d, want 4", total)
		}
		if len(emps) != 2 {
			t.Errorf("List() page = %d rows, want 2", len(emps))
		}
	})
}

func TestEmployeeRepository_Activity(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	empID := seedTestEmployee(t, repo, "coach@fitfix.test")

	metrics, err := repo.GetActivity(ctx, empID)
	if err != nil {
		t.Fatalf("GetActivity() error: %v", err)
	}
	if metrics != nil {
		t.Errorf("GetActivity() = %+v, want nil before any snapshot", metrics)
	}

	login := time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC)
	if err := repo.UpsertActivity(ctx, &employee.ActivityMetrics{
		EmployeeID:       empID,
		UsersManaged:     12,
		MealPlansCreated: 4,
		LastLogin:        &login,
	}); err != nil {
		t.Fatalf("UpsertActivity() error: %v", err)
	}

	if err := repo.UpsertActivity(ctx, &employee.ActivityMetrics{
		EmployeeID:   empID,
		UsersManaged: 15,
	}); err != nil {
		t.Fatalf("second UpsertActivity() error: %v", err)
	}

	metrics, err = repo.GetActivity(ctx, empID)
	if err != nil {
		t.Fatalf("GetActivity() error: %v", err)
	}
	if metrics == nil {
		t.Fatal("GetActivity() = nil after snapshot was recorded")
	}
	if metrics.UsersManaged != 15 {
		t.Errorf("UsersManaged = %d, want 15 (latest snapshot wins)", metrics.UsersManaged)
	}
	if metrics.LastLogin != nil {
		t.Errorf("LastLogin = %v, want nil after replacement", metrics.LastLogin)
	}
}
