package user

import "context"

// Repository defines the interface for admin user data access
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, u *User) (int64, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// UpdateLastLogin records a successful login
	UpdateLastLogin(ctx context.Context, id int64) error
}
