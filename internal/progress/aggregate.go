package progress

import (
	"math"
	"time"

	"github.com/saadjs/fittrack/internal/model"
)

type Snapshot struct {
	Burned   float64 `json:"burned" yaml:"burned"`
	Consumed float64 `json:"consumed" yaml:"consumed"`
	Minutes  float64 `json:"minutes" yaml:"minutes"`
}

// Aggregate sums burned calories and active minutes of the workouts and
// consumed calories of the foods that fall inside window.
func Aggregate(workouts []model.WorkoutRecord, foods []model.FoodRecord, window model.Window, now time.Time) (Snapshot, error) {
	var s Snapshot
	if _, _, err := Range(window, now); err != nil {
		return s, err
	}
	for _, w := range workouts {
		ok, err := InWindow(w.Date, window, now)
		if err != nil {
			return Snapshot{}, err
		}
		if !ok {
			continue
		}
		s.Burned += countable(w.Calories)
		s.Minutes += countable(w.DurationMin)
	}
	for _, f := range foods {
		ok, err := InWindow(f.Date, window, now)
		if err != nil {
			return Snapshot{}, err
		}
		if ok {
			s.Consumed += countable(f.Calories)
		}
	}
	return s, nil
}

// countable drops values that cannot be a real amount.
func countable(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
