package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/errors"
)

type SubscriptionRepository struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) subscription.Repository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Upsert(ctx context.Context, sub *subscription.Subscription) (int64, error) {
	now := time.Now()
	sub.UpdatedAt = now

	query := `
		INSERT INTO subscriptions (employee_id, plan_name, duration_days, start_date, expiration_date, status, total_payments, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id) DO UPDATE SET
			plan_name = excluded.plan_name,
			duration_days = excluded.duration_days,
			start_date = excluded.start_date,
			expiration_date = excluded.expiration_date,
			status = excluded.status,
			total_payments = excluded.total_payments,
			updated_at = excluded.updated_at
	`

	result, err := r.db.ExecContext(ctx, query,
		sub.EmployeeID, sub.PlanName, sub.DurationDays, nullableTime(sub.StartDate), nullableTime(sub.ExpirationDate),
		sub.Status, sub.TotalPayments, now, now,
	)
	if err != nil {
		return 0, errors.DatabaseError("Failed to upsert subscription", err)
	}

	return result.LastInsertId()
}

func (r *SubscriptionRepository) GetByEmployee(ctx context.Context, employeeID int64) (*subscription.Subscription, error) {
	query := `
		SELECT id, employee_id, plan_name, duration_days, start_date, expiration_date, status, total_payments, created_at, updated_at
		FROM subscriptions WHERE employee_id = ?
	`

	sub, err := scanSubscription(r.db.QueryRowContext(ctx, query, employeeID))
	if err == sql.ErrNoRows {
		// Absence of a subscription is a meaningful state
		return nil, nil
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get subscription", err)
	}

	return sub, nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, employeeID int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM subscriptions WHERE employee_id = ?", employeeID)
	if err != nil {
		return errors.DatabaseError("Failed to delete subscription", err)
	}

	rows, err := result.RowsAffected()
	if err != nil || rows == 0 {
		return errors.NotFound("Subscription")
	}

	return nil
}

func (r *SubscriptionRepository) ListAll(ctx context.Context) (map[int64]*subscription.Subscription, error) {
	query := `
		SELECT id, employee_id, plan_name, duration_days, start_date, expiration_date, status, total_payments, created_at, updated_at
		FROM subscriptions
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list subscriptions", err)
	}
	defer rows.Close()

	subs := make(map[int64]*subscription.Subscription)
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan subscription", err)
		}
		subs[sub.EmployeeID] = sub
	}

	return subs, rows.Err()
}

func (r *SubscriptionRepository) UpdateTotalPayments(ctx context.Context, employeeID int64, total float64) error {
	query := "UPDATE subscriptions SET total_payments = ?, updated_at = ? WHERE employee_id = ?"
	_, err := r.db.ExecContext(ctx, query, total, time.Now(), employeeID)
	if err != nil {
		return errors.DatabaseError("Failed to update payment total", err)
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSubscription(row scanner) (*subscription.Subscription, error) {
	var sub subscription.Subscription
	var start, expiration sql.NullTime
	err := row.Scan(
		&sub.ID, &sub.EmployeeID, &sub.PlanName, &sub.DurationDays, &start, &expiration,
		&sub.Status, &sub.TotalPayments, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if start.Valid {
		sub.StartDate = &start.Time
	}
	if expiration.Valid {
		sub.ExpirationDate = &expiration.Time
	}
	return &sub, nil
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
