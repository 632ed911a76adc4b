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

var (
	progressWindow string
	progressDate   string
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show calories burned, consumed and workout minutes for a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := nowFunc()
		if strings.TrimSpace(progressDate) != "" {
			d, err := parseDay("--date", progressDate)
			if err != nil {
				return err
			}
			now = d
		}
		return withSession(cmd, func(ctx context.Context, s settings, client *api.Client, _ *service.Session) error {
			window := s.DefaultWindow
			if cmd.Flags().Changed("window") {
				w, err := parseWindowFlag(progressWindow)
				if err != nil {
					return err
				}
				window = w
			}
			snapshot, err := service.Progress(ctx, client, window, now, fetchOptions(s))
			if err != nil {
				return fmt.Errorf("progress: %w", err)
			}
			first, last, err := progress.Range(window, now)
			if err != nil {
				return err
			}
			if handled, err := printStructured(cmd, struct {
				Window model.Window      `json:"window" yaml:"window"`
				From   string            `json:"from" yaml:"from"`
				To     string            `json:"to" yaml:"to"`
				Totals progress.Snapshot `json:"totals" yaml:"totals"`
			}{window, day(first), day(last), snapshot}); handled {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", headerStyle.Render(string(window)), mutedStyle.Render(day(first)+" to "+day(last)))
			fmt.Fprintf(out, "Burned:\t%s kcal\n", kcal(snapshot.Burned))
			fmt.Fprintf(out, "Consumed:\t%s kcal\n", kcal(snapshot.Consumed))
			fmt.Fprintf(out, "Net:\t%s kcal\n", kcal(snapshot.Consumed-snapshot.Burned))
			fmt.Fprintf(out, "Workout:\t%s min\n", minutes(snapshot.Minutes))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().StringVar(&progressWindow, "window", string(model.WindowDaily), "Window: Daily, Weekly or Monthly (default from config)")
	progressCmd.Flags().StringVar(&progressDate, "date", "", "Evaluate as of this date YYYY-MM-DD (default today)")
}
