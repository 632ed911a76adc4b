package api

import (
	"context"
	"net/http"

	"github.com/saadjs/fittrack/internal/model"
)

type NewGoal struct {
	Type                 model.Window   `json:"type"`
	Category             model.Category `json:"category"`
	TargetCalories       float64        `json:"targetCalories"`
	TargetWorkoutMinutes float64        `json:"targetWorkoutMinutes"`
}

func (c *Client) ListGoals(ctx context.Context) ([]model.Goal, error) {
	body, err := c.do(ctx, http.MethodGet, "/goals", nil)
	if err != nil {
		return nil, err
	}
	items, err := model.DecodeGoals(body)
	if err != nil {
		return nil, err
	}
	for _, g := range items {
		c.reportIssues(ctx, "goal", g.ID, g.Issues)
	}
	return items, nil
}

func (c *Client) CreateGoal(ctx context.Context, in NewGoal) (model.Goal, error) {
	body, err := c.do(ctx, http.MethodPost, "/goals", in)
	if err != nil {
		return model.Goal{}, err
	}
	var out model.Goal
	if err := decodeInto(http.MethodPost, "/goals", body, &out); err != nil {
		return model.Goal{}, err
	}
	return out, nil
}

// SetGoalCompletion sets the manual completion override of a goal. A nil
// completed clears the override so progress decides again.
func (c *Client) SetGoalCompletion(ctx context.Context, id string, completed *bool) (model.Goal, error) {
	path, err := itemPath("/goals", id)
	if err != nil {
		return model.Goal{}, err
	}
	body, err := c.do(ctx, http.MethodPatch, path, map[string]*bool{"manualCompleted": completed})
	if err != nil {
		return model.Goal{}, err
	}
	var out model.Goal
	if err := decodeInto(http.MethodPatch, path, body, &out); err != nil {
		return model.Goal{}, err
	}
	return out, nil
}

func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.deleteByID(ctx, "/goals", id)
}
