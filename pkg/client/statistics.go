package client

import "context"

// StatisticsService reads fleet-wide KPIs
type StatisticsService struct {
	client *Client
}

// Global retrieves the fleet statistics snapshot
func (s *StatisticsService) Global(ctx context.Context) (*GlobalStatistics, error) {
	var stats GlobalStatistics
	if err := s.client.doRequest(ctx, "GET", "/api/v1/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
