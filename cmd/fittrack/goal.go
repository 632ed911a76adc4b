package fittrack

import (
	"context"
	"fmt"
	"strings"

	"github.com/saadjs/fittrack/internal/api"
	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/progress"
	"github.com/saadjs/fittrack/internal/service"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals and see progress against them",
}

var (
	goalType        string
	goalCategory    string
	goalCalories    float64
	goalMinutes     float64
	goalUseStandard bool
)

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := service.PrepareGoal(service.GoalInput{
			Type:                 goalType,
			Category:             goalCategory,
			TargetCalories:       goalCalories,
			TargetWorkoutMinutes: goalMinutes,
			UseStandard:          goalUseStandard,
		})
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, _ settings, client *api.Client, _ *service.Session) error {
			g, err := client.CreateGoal(ctx, in)
			if err != nil {
				return fmt.Errorf("add goal: %w", err)
			}
			if handled, err := printStructured(cmd, g); handled {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s goal %s: %s kcal, %s min\n", in.Type, in.Category, g.ID, kcal(in.TargetCalories), minutes(in.TargetWorkoutMinutes))
			return nil
		})
	},
}

type goalReportView struct {
	service.GoalReport `yaml:",inline"`
	Error              string `json:"error,omitempty" yaml:"error,omitempty"`
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with progress for their window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s settings, client *api.Client, _ *service.Session) error {
			reports, err := service.GoalReports(ctx, client, nowFunc(), fetchOptions(s))
			if err != nil {
				return fmt.Errorf("list goals: %w", err)
			}
			views := make([]goalReportView, 0, len(reports))
			for _, r := range reports {
				v := goalReportView{GoalReport: r}
				if r.Err != nil {
					v.Error = r.Err.Error()
				}
				views = append(views, v)
			}
			if handled, err := printStructured(cmd, views); handled {
				return err
			}
			if len(reports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals yet. Create one with `fittrack goal add`.")
				return nil
			}
			for _, r := range reports {
				printGoalReport(cmd, r)
			}
			return nil
		})
	},
}

func printGoalReport(cmd *cobra.Command, r service.GoalReport) {
	out := cmd.OutOrStdout()
	g := r.Goal
	fmt.Fprintf(out, "%s  %s\n", headerStyle.Render(fmt.Sprintf("%s %s", g.Type, g.Category)), mutedStyle.Render(g.ID))
	if r.Err != nil {
		fmt.Fprintf(out, "  %s\n", errorStyle.Render(r.Err.Error()))
		return
	}
	for _, m := range r.Evaluation.Metrics {
		label, unit := metricLabel(m.Metric)
		fmt.Fprintln(out, progressLine(label, m.Percent, m.Actual, m.Target, unit))
	}
	if c, ok := model.ParseCategory(string(g.Category)); ok && c.Canonical() == model.CategoryGeneralFitness {
		fmt.Fprintf(out, "  %s\n", mutedStyle.Render("consumed "+kcal(r.Snapshot.Consumed)+" kcal"))
	}
	fmt.Fprintf(out, "  status: %s\n", statusLabel(r.Evaluation.Completed, r.Evaluation.Overridden))
}

func metricLabel(m progress.Metric) (string, string) {
	switch m {
	case progress.MetricBurned:
		return "burned", "kcal"
	case progress.MetricConsumed:
		return "consumed", "kcal"
	default:
		return "workout", "min"
	}
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ settings, client *api.Client, _ *service.Session) error {
			if err := client.DeleteGoal(ctx, args[0]); err != nil {
				return fmt.Errorf("delete goal: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s\n", args[0])
			return nil
		})
	},
}

func completionCmd(use, short string, completed *bool, verb string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, _ settings, client *api.Client, _ *service.Session) error {
				g, err := client.SetGoalCompletion(ctx, args[0], completed)
				if err != nil {
					return fmt.Errorf("%s goal: %w", use, err)
				}
				if handled, err := printStructured(cmd, g); handled {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Goal %s %s\n", args[0], verb)
				return nil
			})
		},
	}
}

var (
	markDone   = true
	markUndone = false
)

var (
	goalCompleteCmd = completionCmd("complete", "Mark a goal completed regardless of progress", &markDone, "marked completed")
	goalReopenCmd   = completionCmd("reopen", "Mark a goal not completed regardless of progress", &markUndone, "marked in progress")
	goalAutoCmd     = completionCmd("auto", "Let progress decide whether a goal is completed", nil, "now follows progress")
)

var goalSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show the standard targets for a goal type and category",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := parseWindowFlag(goalType)
		if err != nil {
			return err
		}
		category, ok := model.ParseCategory(goalCategory)
		if !ok {
			return fmt.Errorf("invalid --category %q (use %s)", goalCategory, categoryNames())
		}
		target, err := progress.StandardTarget(window, category)
		if err != nil {
			return err
		}
		if handled, err := printStructured(cmd, target); handled {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s kcal, %s workout min\n", window, category, kcal(target.Calories), minutes(target.Minutes))
		return nil
	},
}

func categoryNames() string {
	names := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalDeleteCmd, goalCompleteCmd, goalReopenCmd, goalAutoCmd, goalSuggestCmd)

	for _, c := range []*cobra.Command{goalAddCmd, goalSuggestCmd} {
		c.Flags().StringVar(&goalType, "type", "", "Goal window: Daily, Weekly or Monthly")
		c.Flags().StringVar(&goalCategory, "category", "", "Goal category: "+categoryNames())
		_ = c.MarkFlagRequired("type")
		_ = c.MarkFlagRequired("category")
	}
	goalAddCmd.Flags().Float64Var(&goalCalories, "calories", 0, "Target calories for the window")
	goalAddCmd.Flags().Float64Var(&goalMinutes, "minutes", 0, "Target workout minutes for the window")
	goalAddCmd.Flags().BoolVar(&goalUseStandard, "standard", false, "Fill unset targets with the standard targets")
}
