package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Records coming from the API are not consistently keyed. Each decoder below
// reads the canonical key first and falls back to the legacy one; a key that
// is present with a non-numeric value decodes to 0 and is reported in Issues.

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (w *WorkoutRecord) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	out := WorkoutRecord{}
	if !r.IsObject() {
		out.Issues = append(out.Issues, "record")
		*w = out
		return nil
	}
	out.ID = firstString(r, "_id", "id")
	out.Type = strings.TrimSpace(r.Get("type").String())
	out.Intensity = Intensity(strings.TrimSpace(r.Get("intensity").String()))
	out.Calories = numberField(r, &out.Issues, "calories", "caloriesBurned")
	out.DurationMin = numberField(r, &out.Issues, "duration", "minutes")
	if v := r.Get("distance"); v.Exists() && v.Type != gjson.Null {
		if d, ok := parseNumber(v); ok {
			out.DistanceKm = &d
		} else {
			out.Issues = append(out.Issues, "distance")
		}
	}
	out.CreatedAt = timeField(r, "createdAt")
	out.Date = occurrence(r, out.CreatedAt, &out.Issues)
	*w = out
	return nil
}

func (f *FoodRecord) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	out := FoodRecord{}
	if !r.IsObject() {
		out.Issues = append(out.Issues, "record")
		*f = out
		return nil
	}
	out.ID = firstString(r, "_id", "id")
	out.Name = strings.TrimSpace(firstString(r, "name", "item"))
	out.Calories = numberField(r, &out.Issues, "caloriesConsumed", "calories")
	out.CreatedAt = timeField(r, "createdAt")
	out.Date = occurrence(r, out.CreatedAt, &out.Issues)
	*f = out
	return nil
}

func (g *Goal) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	out := Goal{}
	if !r.IsObject() {
		out.Issues = append(out.Issues, "record")
		*g = out
		return nil
	}
	out.ID = firstString(r, "_id", "id")
	out.Type = Window(strings.TrimSpace(r.Get("type").String()))
	out.Category = Category(strings.TrimSpace(r.Get("category").String()))
	out.TargetCalories = optionalNumberField(r, &out.Issues, "targetCalories")
	out.TargetWorkoutMinutes = optionalNumberField(r, &out.Issues, "targetWorkoutMinutes")
	switch v := r.Get("manualCompleted"); v.Type {
	case gjson.True:
		out.ManualCompleted = boolPtr(true)
	case gjson.False:
		out.ManualCompleted = boolPtr(false)
	}
	out.CreatedAt = timeField(r, "createdAt")
	*g = out
	return nil
}

// DecodeWorkouts decodes a JSON array of workout objects.
func DecodeWorkouts(body []byte) ([]WorkoutRecord, error) {
	items := make([]WorkoutRecord, 0)
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode workouts: %w", err)
	}
	return items, nil
}

func DecodeFoods(body []byte) ([]FoodRecord, error) {
	items := make([]FoodRecord, 0)
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode foods: %w", err)
	}
	return items, nil
}

func DecodeGoals(body []byte) ([]Goal, error) {
	items := make([]Goal, 0)
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}
	return items, nil
}

func firstString(r gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := r.Get(k); v.Exists() && v.Type != gjson.Null {
			return v.String()
		}
	}
	return ""
}

// numberField reads the first present key; absence is an issue as well.
func numberField(r gjson.Result, issues *[]string, keys ...string) float64 {
	for _, k := range keys {
		v := r.Get(k)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		n, ok := parseNumber(v)
		if !ok {
			*issues = append(*issues, k)
			return 0
		}
		return n
	}
	*issues = append(*issues, keys[0])
	return 0
}

func optionalNumberField(r gjson.Result, issues *[]string, key string) float64 {
	v := r.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return 0
	}
	n, ok := parseNumber(v)
	if !ok {
		*issues = append(*issues, key)
		return 0
	}
	return n
}

func parseNumber(v gjson.Result) (float64, bool) {
	var n float64
	switch v.Type {
	case gjson.Number:
		n = v.Num
	case gjson.String:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func occurrence(r gjson.Result, createdAt time.Time, issues *[]string) time.Time {
	if t := timeField(r, "date"); !t.IsZero() {
		return t
	}
	if createdAt.IsZero() {
		*issues = append(*issues, "date")
	}
	return createdAt
}

// timeField parses a date string or a unix timestamp in milliseconds into UTC.
func timeField(r gjson.Result, key string) time.Time {
	v := r.Get(key)
	switch v.Type {
	case gjson.Number:
		return time.UnixMilli(v.Int()).UTC()
	case gjson.String:
		s := strings.TrimSpace(v.Str)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC()
			}
		}
	}
	return time.Time{}
}

func boolPtr(v bool) *bool {
	return &v
}
