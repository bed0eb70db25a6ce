package testutil

import (
	"context"
	"sort"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/payment"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/progress"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/user"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/errors"
)

// MockEmployeeRepository is a mock implementation of employee.Repository
type MockEmployeeRepository struct {
	Employees   map[int64]*employee.Employee
	Activity    map[int64]*employee.ActivityMetrics
	NextID      int64
	CreateError error
	GetError    error
	ListError   error
	UpdateError error
}

func NewMockEmployeeRepository() *MockEmployeeRepository {
	return &MockEmployeeRepository{
		Employees: make(map[int64]*employee.Employee),
		Activity:  make(map[int64]*employee.ActivityMetrics),
		NextID:    1,
	}
}

func (m *MockEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) (int64, error) {
	if m.CreateError != nil {
		return 0, m.CreateError
	}
	emp.ID = m.NextID
	m.NextID++
	m.Employees[emp.ID] = emp
	return emp.ID, nil
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	emp, ok := m.Employees[id]
	if !ok {
		return nil, errors.NotFound("employee")
	}
	return emp, nil
}

func (m *MockEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Employees[emp.ID]; !ok {
		return errors.NotFound("employee")
	}
	m.Employees[emp.ID] = emp
	return nil
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.Employees[id]; !ok {
		return errors.NotFound("employee")
	}
	delete(m.Employees, id)
	delete(m.Activity, id)
	return nil
}

func (m *MockEmployeeRepository) List(ctx context.Context, filter employee.Filter, limit, offset int) ([]*employee.Employee, int64, error) {
	if m.ListError != nil {
		return nil, 0, m.ListError
	}
	ids := make([]int64, 0, len(m.Employees))
	for id := range m.Employees {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var all []*employee.Employee
	for _, id := range ids {
		emp := m.Employees[id]
		if filter.Role != "" && emp.Role != filter.Role {
			continue
		}
		if filter.Active != nil && emp.IsActive != *filter.Active {
			continue
		}
		all = append(all, emp)
	}

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *MockEmployeeRepository) GetActivity(ctx context.Context, employeeID int64) (*employee.ActivityMetrics, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.Activity[employeeID], nil
}

func (m *MockEmployeeRepository) UpsertActivity(ctx context.Context, metrics *employee.ActivityMetrics) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.Activity[metrics.EmployeeID] = metrics
	return nil
}

// MockSubscriptionRepository is a mock implementation of subscription.Repository
type MockSubscriptionRepository struct {
	Subs        map[int64]*subscription.Subscription
	NextID      int64
	UpsertError error
	GetError    error
	ListError   error
}

func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{
		Subs:   make(map[int64]*subscription.Subscription),
		NextID: 1,
	}
}

func (m *MockSubscriptionRepository) Upsert(ctx context.Context, sub *subscription.Subscription) (int64, error) {
	if m.UpsertError != nil {
		return 0, m.UpsertError
	}
	if existing, ok := m.Subs[sub.EmployeeID]; ok {
		sub.ID = existing.ID
	} else {
		sub.ID = m.NextID
		m.NextID++
	}
	m.Subs[sub.EmployeeID] = sub
	return sub.ID, nil
}

func (m *MockSubscriptionRepository) GetByEmployee(ctx context.Context, employeeID int64) (*subscription.Subscription, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.Subs[employeeID], nil
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, employeeID int64) error {
	delete(m.Subs, employeeID)
	return nil
}

func (m *MockSubscriptionRepository) ListAll(ctx context.Context) (map[int64]*subscription.Subscription, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	out := make(map[int64]*subscription.Subscription, len(m.Subs))
	for k, v := range m.Subs {
		out[k] = v
	}
	return out, nil
}

func (m *MockSubscriptionRepository) UpdateTotalPayments(ctx context.Context, employeeID int64, total float64) error {
	if sub, ok := m.Subs[employeeID]; ok {
		sub.TotalPayments = total
	}
	return nil
}

// MockPaymentRepository is a mock implementation of payment.Repository
type MockPaymentRepository struct {
	Records     map[int64][]*payment.Record
	NextID      int64
	CreateError error
	ListError   error
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		Records: make(map[int64][]*payment.Record),
		NextID:  1,
	}
}

func (m *MockPaymentRepository) Create(ctx context.Context, rec *payment.Record) (int64, error) {
	if m.CreateError != nil {
		return 0, m.CreateError
	}
	rec.ID = m.NextID
	m.NextID++
	m.Records[rec.EmployeeID] = append(m.Records[rec.EmployeeID], rec)
	return rec.ID, nil
}

func (m *MockPaymentRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*payment.Record, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Records[employeeID], nil
}

func (m *MockPaymentRepository) TotalByEmployee(ctx context.Context, employeeID int64) (float64, error) {
	if m.ListError != nil {
		return 0, m.ListError
	}
	var total float64
	for _, rec := range m.Records[employeeID] {
		if rec.Status == payment.StatusCompleted {
			total += rec.Amount
		}
	}
	return total, nil
}

// MockProgressRepository is a mock implementation of progress.Repository
type MockProgressRepository struct {
	Entries     map[int64][]*progress.Entry
	NextID      int64
	CreateError error
	ListError   error
}

func NewMockProgressRepository() *MockProgressRepository {
	return &MockProgressRepository{
		Entries: make(map[int64][]*progress.Entry),
		NextID:  1,
	}
}

func (m *MockProgressRepository) Create(ctx context.Context, entry *progress.Entry) (int64, error) {
	if m.CreateError != nil {
		return 0, m.CreateError
	}
	entry.ID = m.NextID
	m.NextID++
	m.Entries[entry.EmployeeID] = append(m.Entries[entry.EmployeeID], entry)
	return entry.ID, nil
}

func (m *MockProgressRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*progress.Entry, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Entries[employeeID], nil
}

func (m *MockProgressRepository) DeleteByEmployee(ctx context.Context, employeeID int64) error {
	delete(m.Entries, employeeID)
	return nil
}

// MockUserRepository is a mock implementation of user.Repository
type MockUserRepository struct {
	Users       map[int64]*user.User
	EmailIndex  map[string]*user.User
	NextID      int64
	CreateError error
	GetError    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:      make(map[int64]*user.User),
		EmailIndex: make(map[string]*user.User),
		NextID:     1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	if m.CreateError != nil {
		return 0, m.CreateError
	}
	u.ID = m.NextID
	m.NextID++
	m.Users[u.ID] = u
	m.EmailIndex[u.Email] = u
	return u.ID, nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, errors.NotFound("user")
	}
	return u, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.EmailIndex[email]
	if !ok {
		return nil, errors.NotFound("user")
	}
	return u, nil
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	return nil
}
