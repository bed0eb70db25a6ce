package services

import (
	"context"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/analytics"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/statistics"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/metrics"
)

// statsPageSize is the batch size used when walking the employee table
const statsPageSize = 500

// StatisticsServiceImpl implements statistics.Service
type StatisticsServiceImpl struct {
	empRepo employee.Repository
	subRepo subscription.Repository
	logger  *logger.Logger
	nowFn   func() time.Time
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(empRepo employee.Repository, subRepo subscription.Repository, log *logger.Logger) statistics.Service {
	return &StatisticsServiceImpl{
		empRepo: empRepo,
		subRepo: subRepo,
		logger:  log,
		nowFn:   time.Now,
	}
}

// Global recomputes fleet-wide KPIs over all employee accounts
func (s *StatisticsServiceImpl) Global(ctx context.Context) (statistics.GlobalStatistics, error) {
	start := s.nowFn()

	subs, err := s.subRepo.ListAll(ctx)
	if err != nil {
		return statistics.GlobalStatistics{}, err
	}

	var records []analytics.AccountRecord
	offset := 0
	for {
		emps, total, err := s.empRepo.List(ctx, employee.Filter{}, statsPageSize, offset)
		if err != nil {
			return statistics.GlobalStatistics{}, err
		}
		for _, emp := range emps {
			records = append(records, analytics.AccountRecord{
				Employee:     emp,
				Subscription: subs[emp.ID],
			})
		}
		offset += len(emps)
		if len(emps) == 0 || int64(offset) >= total {
			break
		}
	}

	stats := analytics.ComputeGlobalStatistics(records, s.nowFn())

	metrics.RecordStatisticsRefresh(time.Since(start))
	s.logger.WithFields(map[string]interface{}{
		"employees":     stats.TotalEmployees,
		"active":        stats.ActiveSubscriptions,
		"expired":       stats.ExpiredSubscriptions,
		"expiring_soon": stats.ExpiringSoon,
	}).Debug("Recomputed global statistics")

	return stats, nil
}
