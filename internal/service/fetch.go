package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/progress"
	"golang.org/x/sync/errgroup"
)

type RecordSource interface {
	ListWorkouts(ctx context.Context) ([]model.WorkoutRecord, error)
	ListFoods(ctx context.Context) ([]model.FoodRecord, error)
}

type FetchOptions struct {
	// Timeout bounds the whole fetch. Zero means no bound beyond ctx.
	Timeout time.Duration
	// EmptyOnFailure treats a failed read as an empty list instead of an error.
	EmptyOnFailure bool
	Logger         *slog.Logger
}

func (o FetchOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o FetchOptions) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.Timeout > 0 {
		return context.WithTimeout(ctx, o.Timeout)
	}
	return context.WithCancel(ctx)
}

type Records struct {
	Workouts []model.WorkoutRecord `json:"workouts" yaml:"workouts"`
	Foods    []model.FoodRecord    `json:"foods" yaml:"foods"`
}

// FetchRecords reads workouts and foods concurrently and waits for both.
func FetchRecords(ctx context.Context, src RecordSource, opts FetchOptions) (Records, error) {
	ctx, cancel := opts.bound(ctx)
	defer cancel()

	var out Records
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := src.ListWorkouts(gctx)
		if err != nil {
			if !opts.EmptyOnFailure {
				return fmt.Errorf("fetch workouts: %w", err)
			}
			fallback(ctx, opts, "workouts", err)
			items = []model.WorkoutRecord{}
		}
		out.Workouts = items
		return nil
	})
	g.Go(func() error {
		items, err := src.ListFoods(gctx)
		if err != nil {
			if !opts.EmptyOnFailure {
				return fmt.Errorf("fetch foods: %w", err)
			}
			fallback(ctx, opts, "foods", err)
			items = []model.FoodRecord{}
		}
		out.Foods = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return Records{}, err
	}
	return out, nil
}

// Progress fetches records and aggregates them over window as of now.
func Progress(ctx context.Context, src RecordSource, window model.Window, now time.Time, opts FetchOptions) (progress.Snapshot, error) {
	if _, _, err := progress.Range(window, now); err != nil {
		return progress.Snapshot{}, err
	}
	records, err := FetchRecords(ctx, src, opts)
	if err != nil {
		return progress.Snapshot{}, err
	}
	return progress.Aggregate(records.Workouts, records.Foods, window, now)
}

func fallback(ctx context.Context, opts FetchOptions, what string, err error) {
	opts.logger().LogAttrs(ctx, slog.LevelWarn, "fetch failed, continuing with no records",
		slog.String("records", what),
		slog.Any("error", err))
}
