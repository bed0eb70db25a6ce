package analytics

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same instant",
			from: base,
			to:   base,
			want: 0,
		},
		{
			name: "exactly one day ahead",
			from: base,
			to:   base.Add(24 * time.Hour),
			want: 1,
		},
		{
			name: "fraction of a day ahead rounds up",
			from: base,
			to:   base.Add(2 * time.Hour),
			want: 1,
		},
		{
			name: "one day plus a millisecond rounds up to two",
			from: base,
			to:   base.Add(24*time.Hour + time.Millisecond),
			want: 2,
		},
		{
			name: "fraction of a day behind rounds to zero",
			from: base,
			to:   base.Add(-2 * time.Hour),
			want: 0,
		},
		{
			name: "exactly one day behind",
			from: base,
			to:   base.Add(-24 * time.Hour),
			want: -1,
		},
		{
			name: "one day and a bit behind stays at minus one",
			from: base,
			to:   base.Add(-25 * time.Hour),
			want: -1,
		},
		{
			name: "a week ahead",
			from: base,
			to:   base.Add(7 * 24 * time.Hour),
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("missing instant is unknown", func(t *testing.T) {
		if _, ok := DaysUntil(now, nil); ok {
			t.Error("DaysUntil() with nil target reported a known result")
		}
	})

	t.Run("zero instant is unknown", func(t *testing.T) {
		var zero time.Time
		if _, ok := DaysUntil(now, &zero); ok {
			t.Error("DaysUntil() with zero target reported a known result")
		}
	})

	t.Run("known instant delegates to DaysBetween", func(t *testing.T) {
		target := now.Add(36 * time.Hour)
		days, ok := DaysUntil(now, &target)
		if !ok {
			t.Fatal("DaysUntil() reported unknown for a valid target")
		}
		if days != 2 {
			t.Errorf("DaysUntil() = %d, want 2", days)
		}
	})
}
