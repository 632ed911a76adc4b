package model

import (
	"strings"
	"time"
)

type Window string

const (
	WindowDaily   Window = "Daily"
	WindowWeekly  Window = "Weekly"
	WindowMonthly Window = "Monthly"
)

var Windows = []Window{WindowDaily, WindowWeekly, WindowMonthly}

// ParseWindow accepts a window name in any letter case.
func ParseWindow(value string) (Window, bool) {
	for _, w := range Windows {
		if strings.EqualFold(strings.TrimSpace(value), string(w)) {
			return w, true
		}
	}
	return "", false
}

type Category string

const (
	CategoryWeightLoss     Category = "Weight Loss"
	CategoryWeightGain     Category = "Weight Gain"
	CategoryGeneralFitness Category = "General Fitness"
	// CategoryGeneralHealth is the name the web client used for general fitness goals.
	CategoryGeneralHealth Category = "General Health"
)

var Categories = []Category{CategoryWeightLoss, CategoryWeightGain, CategoryGeneralFitness, CategoryGeneralHealth}

// ParseCategory accepts a category in any letter case and with dashes,
// underscores or repeated spaces between words ("weight-loss", "General  Health").
func ParseCategory(value string) (Category, bool) {
	key := normalizeWords(value)
	for _, c := range Categories {
		if key == normalizeWords(string(c)) {
			return c, true
		}
	}
	return "", false
}

// Canonical folds aliases onto the category used for evaluation.
func (c Category) Canonical() Category {
	if c == CategoryGeneralHealth {
		return CategoryGeneralFitness
	}
	return c
}

type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

func ParseIntensity(value string) (Intensity, bool) {
	for _, i := range []Intensity{IntensityLow, IntensityMedium, IntensityHigh} {
		if strings.EqualFold(strings.TrimSpace(value), string(i)) {
			return i, true
		}
	}
	return "", false
}

type WorkoutRecord struct {
	ID          string    `json:"id" yaml:"id"`
	Type        string    `json:"type" yaml:"type"`
	DurationMin float64   `json:"duration" yaml:"duration"`
	DistanceKm  *float64  `json:"distance,omitempty" yaml:"distance,omitempty"`
	Intensity   Intensity `json:"intensity,omitempty" yaml:"intensity,omitempty"`
	Calories    float64   `json:"calories" yaml:"calories"`
	Date        time.Time `json:"date" yaml:"date"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
	Issues      []string  `json:"-" yaml:"-"`
}

type FoodRecord struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Calories  float64   `json:"caloriesConsumed" yaml:"calories"`
	Date      time.Time `json:"date" yaml:"date"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
	Issues    []string  `json:"-" yaml:"-"`
}

type Goal struct {
	ID                   string    `json:"id" yaml:"id"`
	Type                 Window    `json:"type" yaml:"type"`
	Category             Category  `json:"category" yaml:"category"`
	TargetCalories       float64   `json:"targetCalories" yaml:"target_calories"`
	TargetWorkoutMinutes float64   `json:"targetWorkoutMinutes" yaml:"target_workout_minutes"`
	ManualCompleted      *bool     `json:"manualCompleted" yaml:"manual_completed"`
	CreatedAt            time.Time `json:"createdAt" yaml:"created_at"`
	Issues               []string  `json:"-" yaml:"-"`
}

func normalizeWords(value string) string {
	value = strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(value))
	return strings.Join(strings.Fields(value), " ")
}
