package service

import (
	"fmt"

	"github.com/saadjs/fittrack/internal/api"
	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/progress"
)

type GoalInput struct {
	Type                 string
	Category             string
	TargetCalories       float64
	TargetWorkoutMinutes float64
	// UseStandard fills zero targets with the standard target for the
	// goal's type and category.
	UseStandard bool
}

func PrepareGoal(in GoalInput) (api.NewGoal, error) {
	window, ok := model.ParseWindow(in.Type)
	if !ok {
		return api.NewGoal{}, fmt.Errorf("%w: unknown goal type %q (expected Daily, Weekly or Monthly)", progress.ErrInvalidArgument, in.Type)
	}
	category, ok := model.ParseCategory(in.Category)
	if !ok {
		return api.NewGoal{}, fmt.Errorf("%w: unknown goal category %q", progress.ErrInvalidArgument, in.Category)
	}
	if err := validateNonNegativeFloat("target calories", in.TargetCalories); err != nil {
		return api.NewGoal{}, err
	}
	if err := validateNonNegativeFloat("target workout minutes", in.TargetWorkoutMinutes); err != nil {
		return api.NewGoal{}, err
	}

	out := api.NewGoal{
		Type:                 window,
		Category:             category,
		TargetCalories:       in.TargetCalories,
		TargetWorkoutMinutes: in.TargetWorkoutMinutes,
	}
	if in.UseStandard {
		standard, err := progress.StandardTarget(window, category)
		if err != nil {
			return api.NewGoal{}, err
		}
		if out.TargetCalories == 0 {
			out.TargetCalories = standard.Calories
		}
		if out.TargetWorkoutMinutes == 0 {
			out.TargetWorkoutMinutes = standard.Minutes
		}
	}
	if out.TargetCalories == 0 && out.TargetWorkoutMinutes == 0 {
		return api.NewGoal{}, fmt.Errorf("set a calorie target, a workout minutes target, or use the standard target")
	}
	return out, nil
}
