package services

import (
	"context"
	"testing"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/testutil"
)

func TestEmployeeService_Create(t *testing.T) {
	tests := []struct {
		name     string
		emp      *employee.Employee
		wantErr  bool
		wantRole string
	}{
		{
			name: "valid coach",
			emp: &employee.Employee{
				DisplayName: "Alice",
				Email:       "alice@fitfix.test",
			},
			wantErr:  false,
			wantRole: employee.RoleCoach,
		},
		{
			name: "explicit manager role preserved",
			emp: &employee.Employee{
				DisplayName: "Bob",
				Email:       "bob@fitfix.test",
				Role:        employee.RoleManager,
			},
			wantErr:  false,
			wantRole: employee.RoleManager,
		},
		{
			name:    "missing email",
			emp:     &employee.Employee{DisplayName: "NoEmail"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEmployeeService(testutil.NewMockEmployeeRepository(), testLogger())
			id, err := svc.Create(context.Background(), tt.emp)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if id == 0 {
				t.Error("Create() returned zero ID")
			}
			if tt.emp.Role != tt.wantRole {
				t.Errorf("Role = %q, want %q", tt.emp.Role, tt.wantRole)
			}
		})
	}
}

func TestEmployeeService_ListFilters(t *testing.T) {
	repo := testutil.NewMockEmployeeRepository()
	svc := NewEmployeeService(repo, testLogger())
	ctx := context.Background()

	seedEmployee(t, repo, "alice")
	seedEmployee(t, repo, "bob")
	managerID := seedEmployee(t, repo, "carol")
	repo.Employees[managerID].Role = employee.RoleManager
	disabledID := seedEmployee(t, repo, "dave")
	repo.Employees[disabledID].IsActive = false

	all, total, err := svc.List(ctx, employee.Filter{}, 10, 0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if total != 4 || len(all) != 4 {
		t.Errorf("List() = %d items / total %d, want 4 / 4", len(all), total)
	}

	managers, _, err := svc.List(ctx, employee.Filter{Role: employee.RoleManager}, 10, 0)
	if err != nil {
		t.Fatalf("List(role) error: %v", err)
	}
	if len(managers) != 1 || managers[0].ID != managerID {
		t.Errorf("List(role=manager) = %v, want just carol", managers)
	}

	active := true
	activeOnly, _, err := svc.List(ctx, employee.Filter{Active: &active}, 10, 0)
	if err != nil {
		t.Fatalf("List(active) error: %v", err)
	}
	if len(activeOnly) != 3 {
		t.Errorf("List(active) = %d items, want 3", len(activeOnly))
	}
}

func TestEmployeeService_RecordActivityRequiresEmployee(t *testing.T) {
	repo := testutil.NewMockEmployeeRepository()
	svc := NewEmployeeService(repo, testLogger())
	ctx := context.Background()

	err := svc.RecordActivity(ctx, &employee.ActivityMetrics{EmployeeID: 42, UsersManaged: 3})
	if err == nil {
		t.Error("RecordActivity() accepted metrics for an unknown employee")
	}

	id := seedEmployee(t, repo, "alice")
	if err := svc.RecordActivity(ctx, &employee.ActivityMetrics{EmployeeID: id, UsersManaged: 3}); err != nil {
		t.Fatalf("RecordActivity() error: %v", err)
	}

	got, err := svc.GetActivity(ctx, id)
	if err != nil {
		t.Fatalf("GetActivity() error: %v", err)
	}
	if got == nil || got.UsersManaged != 3 {
		t.Errorf("GetActivity() = %+v, want UsersManaged 3", got)
	}
}

func TestEmployeeService_GetActivityAbsent(t *testing.T) {
	repo := testutil.NewMockEmployeeRepository()
	svc := NewEmployeeService(repo, testLogger())

	id := seedEmployee(t, repo, "alice")
	got, err := svc.GetActivity(context.Background(), id)
	if err != nil {
		t.Fatalf("GetActivity() error: %v", err)
	}
	if got != nil {
		t.Errorf("GetActivity() = %+v, want nil before any snapshot", got)
	}
}
