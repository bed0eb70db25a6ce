package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/malakyounes2004-ai/fitfix/internal/api/dto"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/validator"
	"github.com/malakyounes2004-ai/fitfix/internal/services"
	"github.com/malakyounes2004-ai/fitfix/internal/testutil"
)

func newEmployeeHandler(empRepo *testutil.MockEmployeeRepository) *EmployeeHandler {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := services.NewEmployeeService(empRepo, log)
	reportSvc := services.NewReportService(empRepo, testutil.NewMockSubscriptionRepository(), testutil.NewMockPaymentRepository(), log)
	return NewEmployeeHandler(service, reportSvc, log, validator.New())
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestEmployeeHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    dto.CreateEmployeeRequest
		expectedStatus int
	}{
		{
			name: "create valid employee",
			requestBody: dto.CreateEmployeeRequest{
				DisplayName: "Alice Trainer",
				Email:       "alice@fitfix.test",
				Role:        employee.RoleCoach,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing email",
			requestBody: dto.CreateEmployeeRequest{
				DisplayName: "No Email",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid role",
			requestBody: dto.CreateEmployeeRequest{
				DisplayName: "Bad Role",
				Email:       "bad@fitfix.test",
				Role:        "intern",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newEmployeeHandler(testutil.NewMockEmployeeRepository())

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			if status := rr.Code; status != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", status, tt.expectedStatus)
			}
		})
	}
}

func TestEmployeeHandler_Get(t *testing.T) {
	empRepo := testutil.NewMockEmployeeRepository()
	handler := newEmployeeHandler(empRepo)

	empRepo.Employees[1] = &employee.Employee{
		ID:          1,
		DisplayName: "Alice Trainer",
		Email:       "alice@fitfix.test",
		Role:        employee.RoleCoach,
		IsActive:    true,
	}
	empRepo.NextID = 2

	tests := []struct {
		name           string
		employeeID     string
		expectedStatus int
	}{
		{
			name:           "get existing employee",
			employeeID:     "1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "get missing employee",
			employeeID:     "42",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			employeeID:     "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/"+tt.employeeID, nil)
			req = withURLParam(req, "id", tt.employeeID)
			rr := httptest.NewRecorder()

			handler.Get(rr, req)

			if status := rr.Code; status != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", status, tt.expectedStatus)
			}
		})
	}
}

func TestEmployeeHandler_List(t *testing.T) {
	empRepo := testutil.NewMockEmployeeRepository()
	handler := newEmployeeHandler(empRepo)

	empRepo.Employees[1] = &employee.Employee{ID: 1, DisplayName: "Alice", Email: "alice@fitfix.test", Role: employee.RoleCoach, IsActive: true}
	empRepo.Employees[2] = &employee.Employee{ID: 2, DisplayName: "Bob", Email: "bob@fitfix.test", Role: employee.RoleManager, IsActive: true}
	empRepo.NextID = 3

	tests := []struct {
		name          string
		queryParams   string
		expectedCount float64
	}{
		{"list all", "", 2},
		{"filter by role", "?role=coach", 1},
		{"paginated", "?page=1&page_size=10", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/employees"+tt.queryParams, nil)
			rr := httptest.NewRecorder()

			handler.List(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
			}

			var response map[string]interface{}
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if total, ok := response["total_items"].(float64); !ok || total != tt.expectedCount {
				t.Errorf("total_items = %v, want %v", response["total_items"], tt.expectedCount)
			}
		})
	}
}

func TestEmployeeHandler_Report(t *testing.T) {
	empRepo := testutil.NewMockEmployeeRepository()
	handler := newEmployeeHandler(empRepo)

	empRepo.Employees[1] = &employee.Employee{ID: 1, DisplayName: "Alice", Email: "alice@fitfix.test", Role: employee.RoleCoach, IsActive: true}
	empRepo.NextID = 2

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/1/report", nil)
	req = withURLParam(req, "id", "1")
	rr := httptest.NewRecorder()

	handler.Report(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
}
