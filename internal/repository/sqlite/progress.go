package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/progress"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/errors"
)

type ProgressRepository struct {
	db *sql.DB
}

func NewProgressRepository(db *sql.DB) progress.Repository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Create(ctx context.Context, entry *progress.Entry) (int64, error) {
	entry.CreatedAt = time.Now()

	query := `
		INSERT INTO progress_entries (employee_id, client_name, date, workout_completed, meal_plan_followed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.EmployeeID, entry.ClientName, entry.Date, entry.WorkoutCompleted, entry.MealPlanFollowed, entry.CreatedAt,
	)
	if err != nil {
		return 0, errors.DatabaseError("Failed to create progress entry", err)
	}

	return result.LastInsertId()
}

func (r *ProgressRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*progress.Entry, error) {
	query := `
		SELECT id, employee_id, client_name, date, workout_completed, meal_plan_followed, created_at
		FROM progress_entries WHERE employee_id = ?
		ORDER BY date, id
	`

	rows, err := r.db.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list progress entries", err)
	}
	defer rows.Close()

	var entries []*progress.Entry
	for rows.Next() {
		var e progress.Entry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.ClientName, &e.Date, &e.WorkoutCompleted, &e.MealPlanFollowed, &e.CreatedAt); err != nil {
			return nil, errors.DatabaseError("Failed to scan progress entry", err)
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

func (r *ProgressRepository) DeleteByEmployee(ctx context.Context, employeeID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM progress_entries WHERE employee_id = ?", employeeID)
	if err != nil && err != sql.ErrNoRows {
		return errors.DatabaseError("Failed to delete progress entries", err)
	}
	return nil
}
