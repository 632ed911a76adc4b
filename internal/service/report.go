package service

import (
	"context"
	"fmt"
	"time"

	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/progress"
	"golang.org/x/sync/errgroup"
)

type GoalSource interface {
	RecordSource
	ListGoals(ctx context.Context) ([]model.Goal, error)
}

// GoalReport is the evaluation of one goal. Err is set instead of
// Evaluation when the goal cannot be evaluated.
type GoalReport struct {
	Goal       model.Goal          `json:"goal" yaml:"goal"`
	Snapshot   progress.Snapshot   `json:"snapshot" yaml:"snapshot"`
	Evaluation progress.Evaluation `json:"evaluation" yaml:"evaluation"`
	Err        error               `json:"-" yaml:"-"`
}

// GoalReports evaluates every goal against the records of its own window.
func GoalReports(ctx context.Context, src GoalSource, now time.Time, opts FetchOptions) ([]GoalReport, error) {
	ctx, cancel := opts.bound(ctx)
	defer cancel()
	inner := opts
	inner.Timeout = 0

	var (
		goals   []model.Goal
		records Records
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := src.ListGoals(gctx)
		if err != nil {
			if !opts.EmptyOnFailure {
				return fmt.Errorf("fetch goals: %w", err)
			}
			fallback(ctx, opts, "goals", err)
		}
		goals = items
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = FetchRecords(gctx, src, inner)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshots := map[model.Window]progress.Snapshot{}
	reports := make([]GoalReport, 0, len(goals))
	for _, goal := range goals {
		report := GoalReport{Goal: goal}
		window, ok := model.ParseWindow(string(goal.Type))
		if !ok {
			report.Err = fmt.Errorf("%w: unknown goal type %q", progress.ErrInvalidArgument, goal.Type)
			reports = append(reports, report)
			continue
		}
		if category, ok := model.ParseCategory(string(goal.Category)); ok {
			goal.Category = category
		}

		snapshot, seen := snapshots[window]
		if !seen {
			var err error
			if snapshot, err = progress.Aggregate(records.Workouts, records.Foods, window, now); err != nil {
				return nil, err
			}
			snapshots[window] = snapshot
		}
		report.Snapshot = snapshot
		report.Evaluation, report.Err = progress.Evaluate(goal, snapshot)
		reports = append(reports, report)
	}
	return reports, nil
}
