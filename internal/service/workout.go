package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/saadjs/fittrack/internal/api"
	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/progress"
)

const dateLayout = "2006-01-02"

type WorkoutInput struct {
	Type        string
	DurationMin float64
	DistanceKm  *float64
	Intensity   string
	// Calories overrides the estimate when set.
	Calories *float64
	Date     string
	Now      time.Time
}

// PrepareWorkout validates in and fills the estimated calories, the default
// intensity and the default date.
func PrepareWorkout(in WorkoutInput) (api.NewWorkout, error) {
	activity := strings.TrimSpace(in.Type)
	if activity == "" {
		return api.NewWorkout{}, fmt.Errorf("workout type is required")
	}
	if err := validatePositive("duration", in.DurationMin); err != nil {
		return api.NewWorkout{}, err
	}
	if in.DistanceKm != nil {
		if err := validatePositive("distance", *in.DistanceKm); err != nil {
			return api.NewWorkout{}, err
		}
	}

	intensity := model.IntensityMedium
	if strings.TrimSpace(in.Intensity) != "" {
		parsed, ok := model.ParseIntensity(in.Intensity)
		if !ok {
			return api.NewWorkout{}, fmt.Errorf("%w: unknown intensity %q (expected Low, Medium or High)", progress.ErrInvalidArgument, in.Intensity)
		}
		intensity = parsed
	}

	calories := progress.EstimateWorkoutCalories(activity, in.DurationMin, intensity)
	if in.Calories != nil {
		if err := validateNonNegativeFloat("calories", *in.Calories); err != nil {
			return api.NewWorkout{}, err
		}
		calories = *in.Calories
	}

	date, err := normalizeDate(in.Date, in.Now)
	if err != nil {
		return api.NewWorkout{}, err
	}
	return api.NewWorkout{
		Type:      activity,
		Duration:  in.DurationMin,
		Intensity: string(intensity),
		Distance:  in.DistanceKm,
		Calories:  calories,
		Date:      date,
	}, nil
}

type Totals struct {
	Count    int     `json:"count" yaml:"count"`
	Minutes  float64 `json:"minutes" yaml:"minutes"`
	Calories float64 `json:"calories" yaml:"calories"`
}

// WorkoutTotals sums every workout regardless of date. Malformed values
// count as zero.
func WorkoutTotals(workouts []model.WorkoutRecord) Totals {
	out := Totals{Count: len(workouts)}
	for _, w := range workouts {
		out.Minutes += nonNegative(w.DurationMin)
		out.Calories += nonNegative(w.Calories)
	}
	return out
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
