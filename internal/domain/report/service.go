package report

import "context"

// Service defines the interface for report assembly
type Service interface {
	// Assemble builds the aggregate view of one employee account
	// consumed by the recommendation rule engine
	Assemble(ctx context.Context, employeeID int64) (*EmployeeReport, error)
}
