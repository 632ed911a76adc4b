// Package progress aggregates workout and food records over reporting windows
// and evaluates goals against the result.
//
// Calendar days are always computed in UTC. Callers pass "now" explicitly;
// nothing in this package reads the wall clock.
package progress

import (
	"errors"
	"fmt"
	"time"

	"github.com/saadjs/fittrack/internal/model"
)

// ErrInvalidArgument is returned for window, category or goal type values
// outside their enumerations.
var ErrInvalidArgument = errors.New("invalid argument")

// InWindow reports whether date falls inside window relative to now.
// A zero date carries no date information and is never inside a window.
func InWindow(date time.Time, window model.Window, now time.Time) (bool, error) {
	first, last, err := Range(window, now)
	if err != nil {
		return false, err
	}
	if date.IsZero() {
		return false, nil
	}
	day := civilDay(date)
	return !day.Before(first) && !day.After(last), nil
}

// Range returns the first and last UTC calendar day (both inclusive) of window.
// Weekly is a rolling seven days ending today, not a calendar week.
func Range(window model.Window, now time.Time) (time.Time, time.Time, error) {
	today := civilDay(now)
	switch window {
	case model.WindowDaily:
		return today, today, nil
	case model.WindowWeekly:
		return today.AddDate(0, 0, -6), today, nil
	case model.WindowMonthly:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first, first.AddDate(0, 1, -1), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown window %q", ErrInvalidArgument, window)
	}
}

func civilDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
