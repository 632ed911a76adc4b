package progress_test

import (
	"errors"
	"testing"
	"time"

	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/progress"
)

var now = time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC)

func TestInWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		date   time.Time
		window model.Window
		want   bool
	}{
		{name: "daily same instant", date: now, window: model.WindowDaily, want: true},
		{name: "daily start of day", date: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), window: model.WindowDaily, want: true},
		{name: "daily yesterday", date: now.AddDate(0, 0, -1), window: model.WindowDaily, want: false},
		{name: "daily tomorrow", date: now.AddDate(0, 0, 1), window: model.WindowDaily, want: false},
		{name: "weekly today", date: now, window: model.WindowWeekly, want: true},
		{name: "weekly six days back", date: time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC), window: model.WindowWeekly, want: true},
		{name: "weekly seven days back", date: time.Date(2026, 10, 8, 23, 59, 0, 0, time.UTC), window: model.WindowWeekly, want: false},
		{name: "weekly future", date: now.AddDate(0, 0, 1), window: model.WindowWeekly, want: false},
		{name: "monthly first day", date: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), window: model.WindowMonthly, want: true},
		{name: "monthly last day", date: time.Date(2026, 10, 31, 23, 0, 0, 0, time.UTC), window: model.WindowMonthly, want: true},
		{name: "monthly previous month", date: time.Date(2026, 9, 30, 23, 0, 0, 0, time.UTC), window: model.WindowMonthly, want: false},
		{name: "monthly same month last year", date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), window: model.WindowMonthly, want: false},
		{name: "zero date", date: time.Time{}, window: model.WindowMonthly, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := progress.InWindow(tt.date, tt.window, now)
			if err != nil {
				t.Fatalf("in window: %v", err)
			}
			if got != tt.want {
				t.Fatalf("InWindow(%v, %s) = %v, want %v", tt.date, tt.window, got, tt.want)
			}
		})
	}
}

func TestInWindowUsesUTCCalendarDay(t *testing.T) {
	t.Parallel()

	// 23:30 on Oct 14 in UTC-5 is Oct 15 in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	date := time.Date(2026, 10, 14, 23, 30, 0, 0, loc)
	ok, err := progress.InWindow(date, model.WindowDaily, now)
	if err != nil {
		t.Fatalf("in window: %v", err)
	}
	if !ok {
		t.Fatalf("expected %v to fall on %s in UTC", date, now.Format("2006-01-02"))
	}
}

func TestInWindowEveryDayOfMonth(t *testing.T) {
	t.Parallel()

	for day := 1; day <= 31; day++ {
		date := time.Date(2026, 10, day, 12, 0, 0, 0, time.UTC)
		ok, err := progress.InWindow(date, model.WindowMonthly, now)
		if err != nil {
			t.Fatalf("in window: %v", err)
		}
		if !ok {
			t.Fatalf("expected day %d to be in the monthly window", day)
		}
	}
}

func TestInWindowRejectsUnknownWindow(t *testing.T) {
	t.Parallel()

	_, err := progress.InWindow(now, model.Window("Yearly"), now)
	if !errors.Is(err, progress.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRangeMatchesInWindow(t *testing.T) {
	t.Parallel()

	for _, w := range model.Windows {
		first, last, err := progress.Range(w, now)
		if err != nil {
			t.Fatalf("range %s: %v", w, err)
		}
		for _, d := range []time.Time{first, last} {
			if ok, _ := progress.InWindow(d, w, now); !ok {
				t.Fatalf("%s range bound %v is not inside the window", w, d)
			}
		}
		if ok, _ := progress.InWindow(first.AddDate(0, 0, -1), w, now); ok {
			t.Fatalf("%s: day before range start is inside the window", w)
		}
	}
}
