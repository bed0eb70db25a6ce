package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// EmployeeService manages employee accounts and their billing records
type EmployeeService struct {
	client *Client
}

// EmployeeListOptions filters and paginates employee listings
type EmployeeListOptions struct {
	Role     string
	Active   *bool
	Search   string
	Page     int
	PageSize int
}

// CreateEmployeeRequest creates a new employee account
type CreateEmployeeRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// UpdateEmployeeRequest updates an employee; nil fields are unchanged
type UpdateEmployeeRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Role        *string `json:"role,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// SetSubscriptionRequest creates or replaces a subscription
type SetSubscriptionRequest struct {
	PlanName       string     `json:"plan_name"`
	DurationDays   int        `json:"duration_days,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Status         string     `json:"status,omitempty"`
}

// RecordPaymentRequest appends a payment record
type RecordPaymentRequest struct {
	Type   string     `json:"type"`
	Amount float64    `json:"amount"`
	Date   *time.Time `json:"date,omitempty"`
	Status string     `json:"status,omitempty"`
}

// List retrieves employees with optional filters
func (s *EmployeeService) List(ctx context.Context, opts *EmployeeListOptions) (*PaginatedEmployees, error) {
	q := url.Values{}
	if opts != nil {
		if opts.Role != "" {
			q.Set("role", opts.Role)
		}
		if opts.Active != nil {
			q.Set("active", strconv.FormatBool(*opts.Active))
		}
		if opts.Search != "" {
			q.Set("search", opts.Search)
		}
		if opts.Page > 0 {
			q.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PageSize > 0 {
			q.Set("page_size", strconv.Itoa(opts.PageSize))
		}
	}

	path := "/api/v1/employees"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var page PaginatedEmployees
	if err := s.client.doRequestRaw(ctx, "GET", path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Create registers a new employee
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	var emp Employee
	if err := s.client.doRequest(ctx, "POST", "/api/v1/employees", req, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// Get retrieves one employee
func (s *EmployeeService) Get(ctx context.Context, id int64) (*Employee, error) {
	var emp Employee
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/api/v1/employees/%d", id), nil, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// Update modifies an employee
func (s *EmployeeService) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (*Employee, error) {
	var emp Employee
	if err := s.client.doRequest(ctx, "PUT", fmt.Sprintf("/api/v1/employees/%d", id), req, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// Delete removes an employee
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, "DELETE", fmt.Sprintf("/api/v1/employees/%d", id), nil, nil)
}

// RecordActivity stores the employee's activity snapshot
func (s *EmployeeService) RecordActivity(ctx context.Context, id int64, metrics ActivityMetrics) (*ActivityMetrics, error) {
	var out ActivityMetrics
	if err := s.client.doRequest(ctx, "PUT", fmt.Sprintf("/api/v1/employees/%d/activity", id), metrics, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Report retrieves the aggregate account report
func (s *EmployeeService) Report(ctx context.Context, id int64) (*EmployeeReport, error) {
	var rep EmployeeReport
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/api/v1/employees/%d/report", id), nil, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// GetSubscription retrieves an employee's subscription
func (s *EmployeeService) GetSubscription(ctx context.Context, id int64) (*Subscription, error) {
	var sub Subscription
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/api/v1/employees/%d/subscription", id), nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// SetSubscription creates or replaces an employee's subscription
func (s *EmployeeService) SetSubscription(ctx context.Context, id int64, req SetSubscriptionRequest) (*Subscription, error) {
	var sub Subscription
	if err := s.client.doRequest(ctx, "PUT", fmt.Sprintf("/api/v1/employees/%d/subscription", id), req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CancelSubscription removes an employee's subscription
func (s *EmployeeService) CancelSubscription(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, "DELETE", fmt.Sprintf("/api/v1/employees/%d/subscription", id), nil, nil)
}

// ListPayments retrieves an employee's payment history
func (s *EmployeeService) ListPayments(ctx context.Context, id int64) ([]Payment, error) {
	var history []Payment
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/api/v1/employees/%d/payments", id), nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// RecordPayment appends a payment record
func (s *EmployeeService) RecordPayment(ctx context.Context, id int64, req RecordPaymentRequest) (*Payment, error) {
	var rec Payment
	if err := s.client.doRequest(ctx, "POST", fmt.Sprintf("/api/v1/employees/%d/payments", id), req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
