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

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and list workouts",
}

var (
	workoutType      string
	workoutDuration  float64
	workoutDistance  float64
	workoutIntensity string
	workoutCalories  float64
	workoutDate      string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout (calories are estimated unless --calories is set)",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := service.PrepareWorkout(service.WorkoutInput{
			Type:        workoutType,
			DurationMin: workoutDuration,
			DistanceKm:  optionalFloat(cmd, "distance", workoutDistance),
			Intensity:   workoutIntensity,
			Calories:    optionalFloat(cmd, "calories", workoutCalories),
			Date:        workoutDate,
			Now:         nowFunc(),
		})
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, _ settings, client *api.Client, _ *service.Session) error {
			w, err := client.CreateWorkout(ctx, in)
			if err != nil {
				return fmt.Errorf("add workout: %w", err)
			}
			if handled, err := printStructured(cmd, w); handled {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged workout %s: %s, %s min, %s kcal\n", w.ID, in.Type, minutes(in.Duration), kcal(in.Calories))
			return nil
		})
	},
}

var workoutListWindow string

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts with totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		var window model.Window
		if strings.TrimSpace(workoutListWindow) != "" {
			w, err := parseWindowFlag(workoutListWindow)
			if err != nil {
				return err
			}
			window = w
		}
		return withSession(cmd, func(ctx context.Context, _ settings, client *api.Client, _ *service.Session) error {
			items, err := client.ListWorkouts(ctx)
			if err != nil {
				return fmt.Errorf("list workouts: %w", err)
			}
			if window != "" {
				now := nowFunc()
				filtered := items[:0]
				for _, w := range items {
					ok, err := progress.InWindow(w.Date, window, now)
					if err != nil {
						return err
					}
					if ok {
						filtered = append(filtered, w)
					}
				}
				items = filtered
			}
			totals := service.WorkoutTotals(items)
			if handled, err := printStructured(cmd, struct {
				Workouts []model.WorkoutRecord `json:"workouts" yaml:"workouts"`
				Totals   service.Totals        `json:"totals" yaml:"totals"`
			}{items, totals}); handled {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tDATE\tTYPE\tDURATION_MIN\tINTENSITY\tKCAL_BURNED\tDISTANCE_KM")
			for _, w := range items {
				distance := ""
				if w.DistanceKm != nil {
					distance = fmt.Sprintf("%.2f", *w.DistanceKm)
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", w.ID, day(w.Date), w.Type, minutes(w.DurationMin), w.Intensity, kcal(w.Calories), distance)
			}
			fmt.Fprintf(out, "TOTAL\t%d workouts\t%s min\t%s kcal\n", totals.Count, minutes(totals.Minutes), kcal(totals.Calories))
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ settings, client *api.Client, _ *service.Session) error {
			if err := client.DeleteWorkout(ctx, args[0]); err != nil {
				return fmt.Errorf("delete workout: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %s\n", args[0])
			return nil
		})
	},
}

var workoutEstimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate calories burned for a workout",
	Long:  "Estimate calories burned from activity, duration and intensity. Known activities: " + strings.Join(progress.KnownActivities(), ", ") + ".",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(workoutType) == "" {
			return fmt.Errorf("--type is required")
		}
		if workoutDuration <= 0 {
			return fmt.Errorf("--duration must be > 0")
		}
		intensity := model.IntensityMedium
		if strings.TrimSpace(workoutIntensity) != "" {
			parsed, ok := model.ParseIntensity(workoutIntensity)
			if !ok {
				return fmt.Errorf("invalid --intensity %q (use Low, Medium or High)", workoutIntensity)
			}
			intensity = parsed
		}
		calories := progress.EstimateWorkoutCalories(workoutType, workoutDuration, intensity)
		if handled, err := printStructured(cmd, map[string]any{
			"type":      strings.TrimSpace(workoutType),
			"duration":  workoutDuration,
			"intensity": intensity,
			"calories":  calories,
		}); handled {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Estimated %s kcal for %s min of %s (%s)\n", kcal(calories), minutes(workoutDuration), strings.TrimSpace(workoutType), intensity)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutDeleteCmd, workoutEstimateCmd)

	for _, c := range []*cobra.Command{workoutAddCmd, workoutEstimateCmd} {
		c.Flags().StringVar(&workoutType, "type", "", "Activity (Running, Cycling, Walking, Strength Training, Yoga, HIIT, Swimming, Dancing, ...)")
		c.Flags().Float64Var(&workoutDuration, "duration", 0, "Duration in minutes")
		c.Flags().StringVar(&workoutIntensity, "intensity", "", "Intensity: Low, Medium or High (default Medium)")
		_ = c.MarkFlagRequired("type")
		_ = c.MarkFlagRequired("duration")
	}
	workoutAddCmd.Flags().Float64Var(&workoutDistance, "distance", 0, "Distance in km (optional)")
	workoutAddCmd.Flags().Float64Var(&workoutCalories, "calories", 0, "Calories burned (skips the estimate)")
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (default today)")

	workoutListCmd.Flags().StringVar(&workoutListWindow, "window", "", "Only show workouts in this window: Daily, Weekly or Monthly")
}
