package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/progress"
	"github.com/saadjs/fittrack/internal/service"
)

func TestPrepareWorkoutEstimatesCalories(t *testing.T) {
	t.Parallel()

	got, err := service.PrepareWorkout(service.WorkoutInput{Type: " running ", DurationMin: 30, Intensity: "high", Now: now})
	if err != nil {
		t.Fatalf("prepare workout: %v", err)
	}
	if got.Type != "running" || got.Intensity != "High" {
		t.Fatalf("unexpected normalization: %+v", got)
	}
	if got.Calories != 345 {
		t.Fatalf("expected estimated 345 kcal, got %v", got.Calories)
	}
	if got.Date != "2026-10-15" {
		t.Fatalf("expected default date of now, got %q", got.Date)
	}
}

func TestPrepareWorkoutDefaultsAndOverride(t *testing.T) {
	t.Parallel()

	manual := 123.0
	got, err := service.PrepareWorkout(service.WorkoutInput{Type: "Yoga", DurationMin: 60, Calories: &manual, Date: "2026-10-01", Now: now})
	if err != nil {
		t.Fatalf("prepare workout: %v", err)
	}
	if got.Calories != 123 || got.Intensity != string(model.IntensityMedium) || got.Date != "2026-10-01" {
		t.Fatalf("unexpected workout: %+v", got)
	}
}

func TestPrepareWorkoutValidation(t *testing.T) {
	t.Parallel()

	negative := -1.0
	zero := 0.0
	tests := []struct {
		name string
		in   service.WorkoutInput
		want string
	}{
		{name: "missing type", in: service.WorkoutInput{DurationMin: 10}, want: "type is required"},
		{name: "zero duration", in: service.WorkoutInput{Type: "Running"}, want: "duration must be > 0"},
		{name: "zero distance", in: service.WorkoutInput{Type: "Running", DurationMin: 10, DistanceKm: &zero}, want: "distance must be > 0"},
		{name: "negative calories", in: service.WorkoutInput{Type: "Running", DurationMin: 10, Calories: &negative}, want: "calories must be >= 0"},
		{name: "bad intensity", in: service.WorkoutInput{Type: "Running", DurationMin: 10, Intensity: "Extreme"}, want: "unknown intensity"},
		{name: "bad date", in: service.WorkoutInput{Type: "Running", DurationMin: 10, Date: "15/10/2026"}, want: "invalid date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := service.PrepareWorkout(tt.in)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestPrepareGoal(t *testing.T) {
	t.Parallel()

	got, err := service.PrepareGoal(service.GoalInput{Type: "weekly", Category: "weight-loss", TargetWorkoutMinutes: 200, UseStandard: true})
	if err != nil {
		t.Fatalf("prepare goal: %v", err)
	}
	if got.Type != model.WindowWeekly || got.Category != model.CategoryWeightLoss {
		t.Fatalf("unexpected goal enums: %+v", got)
	}
	if got.TargetCalories != 12600 || got.TargetWorkoutMinutes != 200 {
		t.Fatalf("expected standard calories and explicit minutes, got %+v", got)
	}

	if _, err := service.PrepareGoal(service.GoalInput{Type: "Daily", Category: "Weight Gain"}); err == nil {
		t.Fatalf("expected goal without targets to be rejected")
	}
	if _, err := service.PrepareGoal(service.GoalInput{Type: "Yearly", Category: "Weight Gain", TargetCalories: 1}); !errors.Is(err, progress.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for unknown type, got %v", err)
	}
	if _, err := service.PrepareGoal(service.GoalInput{Type: "Daily", Category: "Bulking", TargetCalories: 1}); !errors.Is(err, progress.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for unknown category, got %v", err)
	}
	if _, err := service.PrepareGoal(service.GoalInput{Type: "Daily", Category: "Weight Gain", TargetCalories: -5}); err == nil {
		t.Fatalf("expected negative target to be rejected")
	}
}

func TestPrepareFood(t *testing.T) {
	t.Parallel()

	got, err := service.PrepareFood(service.FoodInput{Name: " Banana ", Calories: 105, Now: now})
	if err != nil {
		t.Fatalf("prepare food: %v", err)
	}
	if got.Name != "Banana" || got.Calories != 105 || got.Date != "2026-10-15" {
		t.Fatalf("unexpected food: %+v", got)
	}
	if _, err := service.PrepareFood(service.FoodInput{Name: "", Calories: 1}); err == nil {
		t.Fatalf("expected missing name to be rejected")
	}
	if _, err := service.PrepareFood(service.FoodInput{Name: "Tea", Calories: -1}); err == nil {
		t.Fatalf("expected negative calories to be rejected")
	}
}
