package client

import (
	"context"
	"fmt"
)

// RecommendationService reads rule engine output
type RecommendationService struct {
	client *Client
}

// ForEmployee retrieves recommendations for one employee, in display order
func (s *RecommendationService) ForEmployee(ctx context.Context, employeeID int64) ([]Recommendation, error) {
	var recs []Recommendation
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/api/v1/employees/%d/recommendations", employeeID), nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
