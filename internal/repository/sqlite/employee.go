package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/errors"
)

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, emp *employee.Employee) (int64, error) {
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	query := `
		INSERT INTO employees (display_name, email, role, is_active, phone_number, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		emp.DisplayName, emp.Email, emp.Role, emp.IsActive, emp.PhoneNumber, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		return 0, errors.DatabaseError("Failed to create employee", err)
	}

	return result.LastInsertId()
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	query := `
		SELECT id, display_name, email, role, is_active, phone_number, created_at, updated_at
		FROM employees WHERE id = ?
	`

	var emp employee.Employee
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&emp.ID, &emp.DisplayName, &emp.Email, &emp.Role, &emp.IsActive, &emp.PhoneNumber, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Employee")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get employee", err)
	}

	return &emp, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	emp.UpdatedAt = time.Now()

	query := `
		UPDATE employees SET display_name = ?, email = ?, role = ?, is_active = ?, phone_number = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		emp.DisplayName, emp.Email, emp.Role, emp.IsActive, emp.PhoneNumber, emp.UpdatedAt, emp.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update employee", err)
	}

	rows, err := result.RowsAffected()
	if err != nil || rows == 0 {
		return errors.NotFound("Employee")
	}

	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return errors.DatabaseError("Failed to delete employee", err)
	}

	rows, err := result.RowsAffected()
	if err != nil || rows == 0 {
		return errors.NotFound("Employee")
	}

	return nil
}

func (r *EmployeeRepository) List(ctx context.Context, filter employee.Filter, limit, offset int) ([]*employee.Employee, int64, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Role != "" {
		where = append(where, "role = ?")
		args = append(args, filter.Role)
	}
	if filter.Active != nil {
		where = append(where, "is_active = ?")
		args = append(args, *filter.Active)
	}
	if filter.Search != "" {
		where = append(where, "(display_name LIKE ? OR email LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM employees WHERE " + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count employees", err)
	}

	query := `
		SELECT id, display_name, email, role, is_active, phone_number, created_at, updated_at
		FROM employees WHERE ` + whereClause + `
		ORDER BY id LIMIT ? OFFSET ?
	`
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list employees", err)
	}
	defer rows.Close()

	var employees []*employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.DisplayName, &emp.Email, &emp.Role, &emp.IsActive, &emp.PhoneNumber, &emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan employee", err)
		}
		employees = append(employees, &emp)
	}

	return employees, total, rows.Err()
}

func (r *EmployeeRepository) GetActivity(ctx context.Context, employeeID int64) (*employee.ActivityMetrics, error) {
	query := `
		SELECT employee_id, users_managed, meal_plans_created, workout_plans_created, last_login, chat_messages, total_sessions
		FROM activity_metrics WHERE employee_id = ?
	`

	var m employee.ActivityMetrics
	var lastLogin sql.NullTime
	err := r.db.QueryRowContext(ctx, query, employeeID).Scan(
		&m.EmployeeID, &m.UsersManaged, &m.MealPlansCreated, &m.WorkoutPlansCreated, &lastLogin, &m.ChatMessages, &m.TotalSessions,
	)
	if err == sql.ErrNoRows {
		// No snapshot recorded yet; a valid state, not an error
		return nil, nil
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get activity metrics", err)
	}

	if lastLogin.Valid {
		m.LastLogin = &lastLogin.Time
	}
	return &m, nil
}

func (r *EmployeeRepository) UpsertActivity(ctx context.Context, metrics *employee.ActivityMetrics) error {
	query := `
		INSERT INTO activity_metrics (employee_id, users_managed, meal_plans_created, workout_plans_created, last_login, chat_messages, total_sessions, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id) DO UPDATE SET
			users_managed = excluded.users_managed,
			meal_plans_created = excluded.meal_plans_created,
			workout_plans_created = excluded.workout_plans_created,
			last_login = excluded.last_login,
			chat_messages = excluded.chat_messages,
			total_sessions = excluded.total_sessions,
			updated_at = excluded.updated_at
	`

	var lastLogin interface{}
	if metrics.LastLogin != nil {
		lastLogin = *metrics.LastLogin
	}

	_, err := r.db.ExecContext(ctx, query,
		metrics.EmployeeID, metrics.UsersManaged, metrics.MealPlansCreated, metrics.WorkoutPlansCreated,
		lastLogin, metrics.ChatMessages, metrics.TotalSessions, time.Now(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to upsert activity metrics", err)
	}

	return nil
}
