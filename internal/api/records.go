package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/saadjs/fittrack/internal/model"
)

type NewWorkout struct {
	Type      string   `json:"type"`
	Duration  float64  `json:"duration"`
	Intensity string   `json:"intensity"`
	Distance  *float64 `json:"distance,omitempty"`
	Calories  float64  `json:"calories"`
	Date      string   `json:"date"`
}

type NewFood struct {
	Name     string  `json:"name"`
	Calories float64 `json:"caloriesConsumed"`
	Date     string  `json:"date"`
}

func (c *Client) ListWorkouts(ctx context.Context) ([]model.WorkoutRecord, error) {
	body, err := c.do(ctx, http.MethodGet, "/workouts", nil)
	if err != nil {
		return nil, err
	}
	items, err := model.DecodeWorkouts(body)
	if err != nil {
		return nil, err
	}
	for _, w := range items {
		c.reportIssues(ctx, "workout", w.ID, w.Issues)
	}
	return items, nil
}

func (c *Client) CreateWorkout(ctx context.Context, in NewWorkout) (model.WorkoutRecord, error) {
	body, err := c.do(ctx, http.MethodPost, "/workouts", in)
	if err != nil {
		return model.WorkoutRecord{}, err
	}
	var out model.WorkoutRecord
	if err := decodeInto(http.MethodPost, "/workouts", body, &out); err != nil {
		return model.WorkoutRecord{}, err
	}
	return out, nil
}

func (c *Client) DeleteWorkout(ctx context.Context, id string) error {
	return c.deleteByID(ctx, "/workouts", id)
}

func (c *Client) ListFoods(ctx context.Context) ([]model.FoodRecord, error) {
	body, err := c.do(ctx, http.MethodGet, "/foods", nil)
	if err != nil {
		return nil, err
	}
	items, err := model.DecodeFoods(body)
	if err != nil {
		return nil, err
	}
	for _, f := range items {
		c.reportIssues(ctx, "food", f.ID, f.Issues)
	}
	return items, nil
}

func (c *Client) CreateFood(ctx context.Context, in NewFood) (model.FoodRecord, error) {
	body, err := c.do(ctx, http.MethodPost, "/foods", in)
	if err != nil {
		return model.FoodRecord{}, err
	}
	var out model.FoodRecord
	if err := decodeInto(http.MethodPost, "/foods", body, &out); err != nil {
		return model.FoodRecord{}, err
	}
	return out, nil
}

func (c *Client) DeleteFood(ctx context.Context, id string) error {
	return c.deleteByID(ctx, "/foods", id)
}

func (c *Client) deleteByID(ctx context.Context, collection, id string) error {
	path, err := itemPath(collection, id)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func itemPath(collection, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%s id is required", strings.TrimPrefix(collection, "/"))
	}
	return collection + "/" + url.PathEscape(id), nil
}

func (c *Client) reportIssues(ctx context.Context, kind, id string, issues []string) {
	if len(issues) == 0 {
		return
	}
	c.logger().DebugContext(ctx, "zeroed malformed record fields",
		slog.String("kind", kind),
		slog.String("id", id),
		slog.String("fields", strings.Join(issues, ",")))
}
