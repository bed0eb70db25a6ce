package statistics

import "context"

// Service defines the interface for fleet statistics
type Service interface {
	// Global recomputes fleet-wide KPIs over all employee accounts.
	// The result is built fresh on every call; nothing is cached.
	Global(ctx context.Context) (GlobalStatistics, error)
}
