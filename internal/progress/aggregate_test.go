package progress_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/progress"
)

func workout(date time.Time, calories, minutes float64) model.WorkoutRecord {
	return model.WorkoutRecord{Type: "Running", Calories: calories, DurationMin: minutes, Date: date}
}

func food(date time.Time, calories float64) model.FoodRecord {
	return model.FoodRecord{Name: "meal", Calories: calories, Date: date}
}

func TestAggregateWeeklyExcludesOldRecords(t *testing.T) {
	t.Parallel()

	workouts := []model.WorkoutRecord{
		workout(now, 300, 30),
		workout(now.AddDate(0, 0, -10), 999, 99),
	}
	got, err := progress.Aggregate(workouts, nil, model.WindowWeekly, now)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	want := progress.Snapshot{Burned: 300, Minutes: 30}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected snapshot (-want +got):\n%s", diff)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	t.Parallel()

	for _, w := range model.Windows {
		got, err := progress.Aggregate(nil, nil, w, now)
		if err != nil {
			t.Fatalf("aggregate %s: %v", w, err)
		}
		if got != (progress.Snapshot{}) {
			t.Fatalf("expected zero snapshot for %s, got %+v", w, got)
		}
	}
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	t.Parallel()

	workouts := []model.WorkoutRecord{
		workout(now, 120, 15),
		workout(now.AddDate(0, 0, -2), 400, 45),
		workout(now.AddDate(0, 0, -5), 250, 20),
		workout(now.AddDate(0, -2, 0), 1000, 100),
	}
	foods := []model.FoodRecord{
		food(now, 700),
		food(now.AddDate(0, 0, -1), 1800),
		food(now.AddDate(0, 0, -8), 2000),
	}
	forward, err := progress.Aggregate(workouts, foods, model.WindowWeekly, now)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	reversedWorkouts := make([]model.WorkoutRecord, len(workouts))
	for i, w := range workouts {
		reversedWorkouts[len(workouts)-1-i] = w
	}
	reversedFoods := make([]model.FoodRecord, len(foods))
	for i, f := range foods {
		reversedFoods[len(foods)-1-i] = f
	}
	backward, err := progress.Aggregate(reversedWorkouts, reversedFoods, model.WindowWeekly, now)
	if err != nil {
		t.Fatalf("aggregate reversed: %v", err)
	}
	if diff := cmp.Diff(forward, backward); diff != "" {
		t.Fatalf("aggregate depends on order (-forward +backward):\n%s", diff)
	}
	want := progress.Snapshot{Burned: 770, Consumed: 2500, Minutes: 80}
	if diff := cmp.Diff(want, forward); diff != "" {
		t.Fatalf("unexpected snapshot (-want +got):\n%s", diff)
	}
}

func TestAggregateSkipsMalformedValues(t *testing.T) {
	t.Parallel()

	workouts := []model.WorkoutRecord{
		workout(now, -50, 20),
		{Type: "Yoga", Calories: 100, DurationMin: 30}, // no date
		workout(now, 200, 0),
	}
	got, err := progress.Aggregate(workouts, []model.FoodRecord{food(now, -10)}, model.WindowDaily, now)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	want := progress.Snapshot{Burned: 200, Minutes: 20}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected snapshot (-want +got):\n%s", diff)
	}
}

func TestAggregateRejectsUnknownWindow(t *testing.T) {
	t.Parallel()

	_, err := progress.Aggregate(nil, nil, model.Window("Fortnightly"), now)
	if !errors.Is(err, progress.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
