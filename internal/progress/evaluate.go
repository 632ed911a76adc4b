package progress

import (
	"fmt"
	"math"

	"github.com/saadjs/fittrack/internal/model"
)

type Metric string

const (
	MetricBurned   Metric = "burned"
	MetricConsumed Metric = "consumed"
	MetricMinutes  Metric = "minutes"
)

type MetricProgress struct {
	Metric    Metric  `json:"metric" yaml:"metric"`
	Actual    float64 `json:"actual" yaml:"actual"`
	Target    float64 `json:"target" yaml:"target"`
	Percent   float64 `json:"percent" yaml:"percent"`
	Satisfied bool    `json:"satisfied" yaml:"satisfied"`
}

type Evaluation struct {
	// Metrics holds only the applicable metrics that have a target.
	Metrics       []MetricProgress `json:"metrics" yaml:"metrics"`
	AutoCompleted bool             `json:"auto_completed" yaml:"auto_completed"`
	Completed     bool             `json:"completed" yaml:"completed"`
	Overridden    bool             `json:"overridden" yaml:"overridden"`
}

// Percent returns the progress of metric and whether it is displayed at all.
func (e Evaluation) Percent(metric Metric) (float64, bool) {
	for _, m := range e.Metrics {
		if m.Metric == metric {
			return m.Percent, true
		}
	}
	return 0, false
}

// Evaluate computes per-metric progress of goal against snapshot. The
// snapshot must already be scoped to the goal's window.
func Evaluate(goal model.Goal, snapshot Snapshot) (Evaluation, error) {
	calories, err := calorieMetric(goal.Category)
	if err != nil {
		return Evaluation{}, err
	}

	candidates := []MetricProgress{
		{Metric: calories, Actual: snapshot.actual(calories), Target: goal.TargetCalories},
		{Metric: MetricMinutes, Actual: snapshot.Minutes, Target: goal.TargetWorkoutMinutes},
	}

	out := Evaluation{Metrics: make([]MetricProgress, 0, len(candidates)), AutoCompleted: true}
	for _, m := range candidates {
		if !(m.Target > 0) {
			continue
		}
		m.Percent = percent(m.Actual, m.Target)
		m.Satisfied = m.Actual >= m.Target
		out.AutoCompleted = out.AutoCompleted && m.Satisfied
		out.Metrics = append(out.Metrics, m)
	}

	out.Completed = out.AutoCompleted
	if goal.ManualCompleted != nil {
		out.Completed = *goal.ManualCompleted
		out.Overridden = true
	}
	return out, nil
}

// calorieMetric picks which calorie sum a category is judged on. General
// fitness goals track burned calories; consumption is informational only.
func calorieMetric(category model.Category) (Metric, error) {
	switch category.Canonical() {
	case model.CategoryWeightLoss, model.CategoryGeneralFitness:
		return MetricBurned, nil
	case model.CategoryWeightGain:
		return MetricConsumed, nil
	default:
		return "", fmt.Errorf("%w: unknown goal category %q", ErrInvalidArgument, category)
	}
}

func (s Snapshot) actual(metric Metric) float64 {
	switch metric {
	case MetricBurned:
		return s.Burned
	case MetricConsumed:
		return s.Consumed
	default:
		return s.Minutes
	}
}

func percent(actual, target float64) float64 {
	p := 100 * actual / target
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(100, p))
}
