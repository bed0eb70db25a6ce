package analytics

import (
	"testing"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/domain/employee"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/statistics"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/subscription"
)

func record(id int64, sub *subscription.Subscription) AccountRecord {
	return AccountRecord{
		Employee:     &employee.Employee{ID: id, IsActive: true},
		Subscription: sub,
	}
}

func sub(plan, status string, expires *time.Time, paid float64) *subscription.Subscription {
	return &subscription.Subscription{
		PlanName:       plan,
		Status:         status,
		ExpirationDate: expires,
		TotalPayments:  paid,
	}
}

func at(t time.Time) *time.Time { return &t }

func TestComputeGlobalStatistics(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	farOut := at(now.Add(90 * 24 * time.Hour))

	tests := []struct {
		name    string
		records []AccountRecord
		want    statistics.GlobalStatistics
	}{
		{
			name:    "empty fleet",
			records: nil,
			want:    statistics.GlobalStatistics{MostPopularPlan: statistics.NoPlan},
		},
		{
			name: "accounts without subscriptions still count",
			records: []AccountRecord{
				record(1, nil),
				record(2, nil),
			},
			want: statistics.GlobalStatistics{
				TotalEmployees:  2,
				MostPopularPlan: statistics.NoPlan,
			},
		},
		{
			name: "active and expired by status",
			records: []AccountRecord{
				record(1, sub("Gold", "active", farOut, 100)),
				record(2, sub("Silver", "expired", farOut, 50)),
				record(3, sub("Silver", "cancelled", farOut, 0)),
			},
			want: statistics.GlobalStatistics{
				TotalEmployees:       3,
				ActiveSubscriptions:  1,
				ExpiredSubscriptions: 2,
				TotalRevenue:         150,
				MostPopularPlan:      "Silver",
			},
		},
		{
			name: "active status with past expiration counts as expired",
			records: []AccountRecord{
				record(1, sub("Gold", "active", at(now.Add(-24*time.Hour)), 200)),
			},
			want: statistics.GlobalStatistics{
				TotalEmployees:       1,
				ActiveSubscriptions:  1,
				ExpiredSubscriptions: 1,
				TotalRevenue:         200,
				MostPopularPlan:      "Gold",
			},
		},
		{
			name: "expiring soon window is 1 to 7 days inclusive",
			records: []AccountRecord{
				record(1, sub("Gold", "active", at(now.Add(3*24*time.Hour)), 0)),
				record(2, sub("Gold", "active", at(now.Add(7*24*time.Hour)), 0)),
				record(3, sub("Gold", "active", at(now.Add(7*24*time.Hour+time.Hour)), 0)),
				record(4, sub("Gold", "expired", at(now.Add(3*24*time.Hour)), 0)),
			},
			want: statistics.GlobalStatistics{
				TotalEmployees:       4,
				ActiveSubscriptions:  3,
				ExpiredSubscriptions: 1,
				ExpiringSoon:         2,
				MostPopularPlan:      "Gold",
			},
		},
		{
			name: "missing expiration excluded from date counts only",
			records: []AccountRecord{
				record(1, sub("Gold", "active", nil, 75)),
			},
			want: statistics.GlobalStatistics{
				TotalEmployees:      1,
				ActiveSubscriptions: 1,
				TotalRevenue:        75,
				MostPopularPlan:     "Gold",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeGlobalStatistics(tt.records, now)
			if got != tt.want {
				t.Errorf("ComputeGlobalStatistics() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMostPopularPlanDeterminism(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("clear mode wins in any permutation", func(t *testing.T) {
		records := []AccountRecord{
			record(1, sub("Silver", "active", nil, 0)),
			record(2, sub("Gold", "active", nil, 0)),
			record(3, sub("Gold", "active", nil, 0)),
		}
		permutations := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}, {2, 0, 1}}
		for _, perm := range permutations {
			shuffled := make([]AccountRecord, len(records))
			for i, j := range perm {
				shuffled[i] = records[j]
			}
			got := ComputeGlobalStatistics(shuffled, now)
			if got.MostPopularPlan != "Gold" {
				t.Errorf("permutation %v: MostPopularPlan = %q, want Gold", perm, got.MostPopularPlan)
			}
		}
	})

	t.Run("tie goes to first encountered plan", func(t *testing.T) {
		records := []AccountRecord{
			record(1, sub("Silver", "active", nil, 0)),
			record(2, sub("Gold", "active", nil, 0)),
			record(3, sub("Gold", "active", nil, 0)),
			record(4, sub("Silver", "active", nil, 0)),
		}
		got := ComputeGlobalStatistics(records, now)
		if got.MostPopularPlan != "Silver" {
			t.Errorf("MostPopularPlan = %q, want Silver (first seen)", got.MostPopularPlan)
		}
	})
}
