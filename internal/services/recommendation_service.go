package services

import (
	"context"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/analytics"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/recommendation"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/report"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/statistics"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/metrics"
)

// RecommendationServiceImpl implements recommendation.Service
type RecommendationServiceImpl struct {
	empRepo   employee.Repository
	reportSvc report.Service
	statsSvc  statistics.Service
	logger    *logger.Logger
	nowFn     func() time.Time
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(empRepo employee.Repository, reportSvc report.Service, statsSvc statistics.Service, log *logger.Logger) recommendation.Service {
	return &RecommendationServiceImpl{
		empRepo:   empRepo,
		reportSvc: reportSvc,
		statsSvc:  statsSvc,
		logger:    log,
		nowFn:     time.Now,
	}
}

// ForEmployee evaluates the rule engine for one employee
func (s *RecommendationServiceImpl) ForEmployee(ctx context.Context, employeeID int64) ([]recommendation.Recommendation, error) {
	emp, err := s.empRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	rep, err := s.reportSvc.Assemble(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	stats, err := s.statsSvc.Global(ctx)
	if err != nil {
		return nil, err
	}

	recs := analytics.EvaluateRecommendations(analytics.RuleInput{
		Employee: emp,
		Report:   rep,
		Stats:    stats,
		Now:      s.nowFn(),
	})

	byType := make(map[string]int, len(recs))
	for _, r := range recs {
		byType[r.Type]++
	}
	metrics.RecordRecommendations(byType)

	s.logger.WithFields(map[string]interface{}{
		"employee_id": employeeID,
		"count":       len(recs),
	}).Debug("Evaluated recommendations")

	return recs, nil
}
