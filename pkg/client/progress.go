package client

import (
	"context"
	"fmt"
	"time"
)

// ProgressService manages client progress logs
type ProgressService struct {
	client *Client
}

// AddEntryRequest appends one day to a progress log
type AddEntryRequest struct {
	ClientName       string     `json:"client_name,omitempty"`
	Date             *time.Time `json:"date,omitempty"`
	WorkoutCompleted bool       `json:"workout_completed"`
	MealPlanFollowed bool       `json:"meal_plan_followed"`
}

// AddEntry records one day of client adherence for an employee
func (s *ProgressService) AddEntry(ctx context.Context, employeeID int64, req AddEntryRequest) (*ProgressEntry, error) {
	var entry ProgressEntry
	if err := s.client.doRequest(ctx, "POST", fmt.Sprintf("/api/v1/employees/%d/progress", employeeID), req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// List retrieves the raw progress log, oldest first
func (s *ProgressService) List(ctx context.Context, employeeID int64) ([]ProgressEntry, error) {
	var entries []ProgressEntry
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/api/v1/employees/%d/progress", employeeID), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Report aggregates the log into completion and compliance metrics
func (s *ProgressService) Report(ctx context.Context, employeeID int64) (*ProgressStats, error) {
	var stats ProgressStats
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/api/v1/employees/%d/progress/report", employeeID), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
