package services

import (
	"context"
	"testing"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/payment"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
	"github.com/malakyounes2004-ai/fitfix/internal/testutil"
)

func TestSubscriptionService_Set(t *testing.T) {
	tests := []struct {
		name    string
		sub     *subscription.Subscription
		wantErr bool
	}{
		{
			name: "valid subscription",
			sub: &subscription.Subscription{
				EmployeeID: 1,
				PlanName:   "Gold",
			},
			wantErr: false,
		},
		{
			name: "missing employee ID",
			sub: &subscription.Subscription{
				PlanName: "Gold",
			},
			wantErr: true,
		},
		{
			name: "missing plan name",
			sub: &subscription.Subscription{
				EmployeeID: 1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSubscriptionService(testutil.NewMockSubscriptionRepository(), testutil.NewMockPaymentRepository(), testLogger())
			_, err := svc.Set(context.Background(), tt.sub)
			if (err != nil) != tt.wantErr {
				t.Errorf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubscriptionService_SetDerivesExpiration(t *testing.T) {
	svc := NewSubscriptionService(testutil.NewMockSubscriptionRepository(), testutil.NewMockPaymentRepository(), testLogger())

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	sub := &subscription.Subscription{
		EmployeeID:   1,
		PlanName:     "Gold",
		StartDate:    &start,
		DurationDays: 30,
	}
	if _, err := svc.Set(context.Background(), sub); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if sub.ExpirationDate == nil {
		t.Fatal("ExpirationDate not derived from start date and duration")
	}
	want := start.AddDate(0, 0, 30)
	if !sub.ExpirationDate.Equal(want) {
		t.Errorf("ExpirationDate = %v, want %v", sub.ExpirationDate, want)
	}
	if sub.Status != subscription.StatusActive {
		t.Errorf("Status = %q, want %q", sub.Status, subscription.StatusActive)
	}
}

func TestSubscriptionService_RecordPaymentRefreshesTotal(t *testing.T) {
	subRepo := testutil.NewMockSubscriptionRepository()
	payRepo := testutil.NewMockPaymentRepository()
	svc := NewSubscriptionService(subRepo, payRepo, testLogger())

	if _, err := svc.Set(context.Background(), &subscription.Subscription{EmployeeID: 1, PlanName: "Gold"}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	payAmounts := []float64{99.99, 49.99}
	for _, amt := range payAmounts {
		if _, err := svc.RecordPayment(context.Background(), &payment.Record{
			EmployeeID: 1,
			Type:       payment.TypeSubscription,
			Amount:     amt,
		}); err != nil {
			t.Fatalf("RecordPayment(%v) error: %v", amt, err)
		}
	}
	// A pending payment must not count toward the cached total
	if _, err := svc.RecordPayment(context.Background(), &payment.Record{
		EmployeeID: 1,
		Type:       payment.TypeRenewal,
		Amount:     500,
		Status:     payment.StatusPending,
	}); err != nil {
		t.Fatalf("RecordPayment(pending) error: %v", err)
	}

	sub, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if want := 149.98; sub.TotalPayments != want {
		t.Errorf("TotalPayments = %v, want %v", sub.TotalPayments, want)
	}

	history, err := svc.Payments(context.Background(), 1)
	if err != nil {
		t.Fatalf("Payments() error: %v", err)
	}
	if len(history) != 3 {
		t.Errorf("len(history) = %d, want 3", len(history))
	}
}

func TestSubscriptionService_RecordPaymentRejectsNegative(t *testing.T) {
	svc := NewSubscriptionService(testutil.NewMockSubscriptionRepository(), testutil.NewMockPaymentRepository(), testLogger())

	_, err := svc.RecordPayment(context.Background(), &payment.Record{EmployeeID: 1, Amount: -5})
	if err == nil {
		t.Error("RecordPayment() accepted a negative amount")
	}
}

func TestSubscriptionService_GetAbsent(t *testing.T) {
	svc := NewSubscriptionService(testutil.NewMockSubscriptionRepository(), testutil.NewMockPaymentRepository(), testLogger())

	sub, err := svc.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if sub != nil {
		t.Errorf("Get() = %+v, want nil for an employee without a subscription", sub)
	}
}
