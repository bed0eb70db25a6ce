package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/progress"
	"github.com/malakyounes2004-ai/fitfix/internal/testutil"
)

func TestProgressRepository_ListOrderedByDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	empRepo := NewEmployeeRepository(db)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	empID := seedTestEmployee(t, empRepo, "coach@fitfix.test")

	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	// Insert out of order; ListByEmployee sorts by date
	for _, offset := range []int{2, 0, 1} {
		if _, err := repo.Create(ctx, &progress.Entry{
			EmployeeID:       empID,
			ClientName:       "client-a",
			Date:             base.AddDate(0, 0, offset),
			WorkoutCompleted: offset%2 == 0,
		}); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	entries, err := repo.ListByEmployee(ctx, empID)
	if err != nil {
		t.Fatalf("ListByEmployee() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ListByEmployee() = %d entries, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Date.Before(entries[i-1].Date) {
			t.Errorf("entries out of order at index %d: %v before %v", i, entries[i].Date, entries[i-1].Date)
		}
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not set on insert")
	}
}

func TestProgressRepository_DeleteByEmployee(t *testing.T) {
	db := testutil.NewTestDB(t)
	empRepo := NewEmployeeRepository(db)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	empID := seedTestEmployee(t, empRepo, "coach@fitfix.test")
	otherID := seedTestEmployee(t, empRepo, "other@fitfix.test")

	day := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []int64{empID, otherID} {
		if _, err := repo.Create(ctx, &progress.Entry{EmployeeID: id, Date: day, MealPlanFollowed: true}); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	if err := repo.DeleteByEmployee(ctx, empID); err != nil {
		t.Fatalf("DeleteByEmployee() error: %v", err)
	}

	gone, err := repo.ListByEmployee(ctx, empID)
	if err != nil {
		t.Fatalf("ListByEmployee() error: %v", err)
	}
	if len(gone) != 0 {
		t.Errorf("entries remain after delete: %d", len(gone))
	}

	kept, err := repo.ListByEmployee(ctx, otherID)
	if err != nil {
		t.Fatalf("ListByEmployee() error: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("other employee's log affected: %d entries, want 1", len(kept))
	}
}
