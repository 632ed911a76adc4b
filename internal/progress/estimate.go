package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/saadjs/fittrack/internal/model"
)

const defaultMET = 5

var metTable = []struct {
	activity string
	met      float64
}{
	{"Running", 10},
	{"Cycling", 8},
	{"Walking", 4},
	{"Strength Training", 6},
	{"Yoga", 3},
	{"HIIT", 12},
	{"Swimming", 9},
	{"Dancing", 7},
}

var intensityMultiplier = map[model.Intensity]float64{
	model.IntensityLow:    0.85,
	model.IntensityMedium: 1.0,
	model.IntensityHigh:   1.15,
}

// KnownActivities lists the activities with a dedicated MET coefficient.
func KnownActivities() []string {
	out := make([]string, 0, len(metTable))
	for _, row := range metTable {
		out = append(out, row.activity)
	}
	return out
}

// EstimateWorkoutCalories approximates calories burned as MET x minutes x
// intensity multiplier, rounded and floored at zero. Unknown activities use
// MET 5 and unknown intensities count as Medium.
func EstimateWorkoutCalories(activity string, durationMin float64, intensity model.Intensity) float64 {
	if !(durationMin > 0) || math.IsInf(durationMin, 0) {
		return 0
	}
	factor, ok := intensityMultiplier[intensity]
	if !ok {
		factor = 1.0
	}
	return math.Max(0, math.Round(met(activity)*durationMin*factor))
}

func met(activity string) float64 {
	key := strings.Join(strings.Fields(strings.ToLower(activity)), " ")
	for _, row := range metTable {
		if strings.ToLower(row.activity) == key {
			return row.met
		}
	}
	return defaultMET
}

type Target struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Minutes  float64 `json:"minutes" yaml:"minutes"`
}

var dailyBaseline = map[model.Category]Target{
	model.CategoryWeightLoss:     {Calories: 1800, Minutes: 45},
	model.CategoryWeightGain:     {Calories: 2800, Minutes: 30},
	model.CategoryGeneralFitness: {Calories: 2200, Minutes: 40},
}

// windowDays approximates a month as 30 days.
var windowDays = map[model.Window]float64{
	model.WindowDaily:   1,
	model.WindowWeekly:  7,
	model.WindowMonthly: 30,
}

// StandardTarget returns the suggested calorie and minute targets for a goal.
func StandardTarget(goalType model.Window, category model.Category) (Target, error) {
	base, ok := dailyBaseline[category.Canonical()]
	if !ok {
		return Target{}, fmt.Errorf("%w: unknown goal category %q", ErrInvalidArgument, category)
	}
	days, ok := windowDays[goalType]
	if !ok {
		return Target{}, fmt.Errorf("%w: unknown goal type %q", ErrInvalidArgument, goalType)
	}
	return Target{Calories: base.Calories * days, Minutes: base.Minutes * days}, nil
}
