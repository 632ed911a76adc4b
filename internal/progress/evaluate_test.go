package progress_test

import (
	"errors"
	"math"
	"testing"

	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/progress"
)

func TestEvaluateWeightLossCaloriesOnly(t *testing.T) {
	t.Parallel()

	goal := model.Goal{Type: model.WindowDaily, Category: model.CategoryWeightLoss, TargetCalories: 500}
	got, err := progress.Evaluate(goal, progress.Snapshot{Burned: 500})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if pct, ok := got.Percent(progress.MetricBurned); !ok || pct != 100 {
		t.Fatalf("expected burned 100%%, got %v (shown=%v)", pct, ok)
	}
	if _, ok := got.Percent(progress.MetricMinutes); ok {
		t.Fatalf("expected minutes to be hidden without a target")
	}
	if !got.Completed || !got.AutoCompleted || got.Overridden {
		t.Fatalf("expected automatic completion, got %+v", got)
	}
}

func TestEvaluateGeneralFitnessPartial(t *testing.T) {
	t.Parallel()

	goal := model.Goal{Type: model.WindowDaily, Category: model.CategoryGeneralFitness, TargetCalories: 2200, TargetWorkoutMinutes: 40}
	got, err := progress.Evaluate(goal, progress.Snapshot{Burned: 1000, Minutes: 20})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	burned, _ := got.Percent(progress.MetricBurned)
	if math.Abs(burned-45.4545) > 0.001 {
		t.Fatalf("expected burned ~45.45%%, got %v", burned)
	}
	if minutes, _ := got.Percent(progress.MetricMinutes); minutes != 50 {
		t.Fatalf("expected minutes 50%%, got %v", minutes)
	}
	if got.Completed {
		t.Fatalf("expected goal in progress, got %+v", got)
	}
}

func TestEvaluateCategoryPicksCalorieMetric(t *testing.T) {
	t.Parallel()

	snapshot := progress.Snapshot{Burned: 100, Consumed: 3000, Minutes: 10}
	tests := []struct {
		category model.Category
		metric   progress.Metric
	}{
		{category: model.CategoryWeightLoss, metric: progress.MetricBurned},
		{category: model.CategoryWeightGain, metric: progress.MetricConsumed},
		{category: model.CategoryGeneralFitness, metric: progress.MetricBurned},
		{category: model.CategoryGeneralHealth, metric: progress.MetricBurned},
	}
	for _, tt := range tests {
		got, err := progress.Evaluate(model.Goal{Category: tt.category, TargetCalories: 2800}, snapshot)
		if err != nil {
			t.Fatalf("evaluate %s: %v", tt.category, err)
		}
		if len(got.Metrics) != 1 || got.Metrics[0].Metric != tt.metric {
			t.Fatalf("%s: expected single %s metric, got %+v", tt.category, tt.metric, got.Metrics)
		}
	}
}

func TestEvaluatePercentIsClamped(t *testing.T) {
	t.Parallel()

	goal := model.Goal{Category: model.CategoryWeightGain, TargetCalories: 2000, TargetWorkoutMinutes: 30}
	got, err := progress.Evaluate(goal, progress.Snapshot{Consumed: 5000, Minutes: 90})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	for _, m := range got.Metrics {
		if m.Percent != 100 || !m.Satisfied {
			t.Fatalf("expected clamped satisfied metric, got %+v", m)
		}
	}
}

func TestEvaluateZeroTargetsAreVacuouslyComplete(t *testing.T) {
	t.Parallel()

	for _, c := range model.Categories {
		got, err := progress.Evaluate(model.Goal{Category: c}, progress.Snapshot{})
		if err != nil {
			t.Fatalf("evaluate %s: %v", c, err)
		}
		if !got.Completed || len(got.Metrics) != 0 {
			t.Fatalf("%s: expected vacuous completion, got %+v", c, got)
		}
	}
}

func TestEvaluateManualOverride(t *testing.T) {
	t.Parallel()

	no, yes := false, true
	satisfied := model.Goal{Category: model.CategoryWeightLoss, TargetCalories: 100, ManualCompleted: &no}
	got, err := progress.Evaluate(satisfied, progress.Snapshot{Burned: 200})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got.Completed || !got.AutoCompleted || !got.Overridden {
		t.Fatalf("expected override to force incomplete, got %+v", got)
	}

	unsatisfied := model.Goal{Category: model.CategoryWeightLoss, TargetCalories: 100, ManualCompleted: &yes}
	got, err = progress.Evaluate(unsatisfied, progress.Snapshot{})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !got.Completed || got.AutoCompleted {
		t.Fatalf("expected override to force complete, got %+v", got)
	}
}

func TestEvaluateRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	_, err := progress.Evaluate(model.Goal{Category: "Bulking", TargetCalories: 100}, progress.Snapshot{})
	if !errors.Is(err, progress.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
