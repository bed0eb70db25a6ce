package progress

import "context"

// Service defines the interface for progress tracking logic
type Service interface {
	// AddEntry appends a progress entry for an employee's client log
	AddEntry(ctx context.Context, entry *Entry) (int64, error)

	// Entries retrieves an employee's progress log, oldest first
	Entries(ctx context.Context, employeeID int64) ([]*Entry, error)

	// Report aggregates an employee's progress log into Stats
	Report(ctx context.Context, employeeID int64) (Stats, error)
}
