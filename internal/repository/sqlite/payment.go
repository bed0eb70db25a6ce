package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/payment"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/errors"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) payment.Repository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, rec *payment.Record) (int64, error) {
	rec.CreatedAt = time.Now()

	query := `
		INSERT INTO payments (employee_id, type, amount, date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		rec.EmployeeID, rec.Type, rec.Amount, rec.Date, rec.Status, rec.CreatedAt,
	)
	if err != nil {
		return 0, errors.DatabaseError("Failed to create payment", err)
	}

	return result.LastInsertId()
}

func (r *PaymentRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*payment.Record, error) {
	query := `
		SELECT id, employee_id, type, amount, date, status, created_at
		FROM payments WHERE employee_id = ?
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list payments", err)
	}
	defer rows.Close()

	var records []*payment.Record
	for rows.Next() {
		var rec payment.Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Type, &rec.Amount, &rec.Date, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, errors.DatabaseError("Failed to scan payment", err)
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}

func (r *PaymentRepository) TotalByEmployee(ctx context.Context, employeeID int64) (float64, error) {
	query := "SELECT COALESCE(SUM(amount), 0) FROM payments WHERE employee_id = ? AND status = ?"

	var total float64
	err := r.db.QueryRowContext(ctx, query, employeeID, payment.StatusCompleted).Scan(&total)
	if err != nil && err != sql.ErrNoRows {
		return 0, errors.DatabaseError("Failed to total payments", err)
	}

	return total, nil
}
