package worker

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/statistics"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/metrics"
)

// StatsExporter periodically recomputes fleet statistics and exports
// them as Prometheus gauges, so dashboards do not need to poll the
// statistics endpoint.
type StatsExporter struct {
	service  statistics.Service
	schedule string
	logger   *logger.Logger
	cron     *cron.Cron
}

// NewStatsExporter creates a new stats exporter. The schedule uses
// cron syntax, including descriptors like "@every 5m".
func NewStatsExporter(service statistics.Service, schedule string, log *logger.Logger) *StatsExporter {
	return &StatsExporter{
		service:  service,
		schedule: schedule,
		logger:   log,
		cron:     cron.New(),
	}
}

// Start schedules the export job and runs one refresh immediately
func (s *StatsExporter) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.refresh(ctx) }); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"schedule": s.schedule,
	}).Info("Starting stats exporter worker")

	s.refresh(ctx)
	s.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running refresh to finish
func (s *StatsExporter) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Stats exporter worker stopped")
}

func (s *StatsExporter) refresh(ctx context.Context) {
	stats, err := s.service.Global(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to refresh fleet statistics")
		return
	}

	metrics.SetFleetGauges(
		stats.TotalEmployees,
		stats.ActiveSubscriptions,
		stats.ExpiredSubscriptions,
		stats.ExpiringSoon,
		stats.TotalRevenue,
	)
}
