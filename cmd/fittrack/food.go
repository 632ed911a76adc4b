package fittrack

import (
	"context"
	"fmt"

	"github.com/saadjs/fittrack/internal/api"
	"github.com/saadjs/fittrack/internal/service"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log and list food",
}

var (
	foodName     string
	foodCalories float64
	foodDate     string
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log food",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := service.PrepareFood(service.FoodInput{Name: foodName, Calories: foodCalories, Date: foodDate, Now: nowFunc()})
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, _ settings, client *api.Client, _ *service.Session) error {
			f, err := client.CreateFood(ctx, in)
			if err != nil {
				return fmt.Errorf("add food: %w", err)
			}
			if handled, err := printStructured(cmd, f); handled {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged food %s: %s, %s kcal\n", f.ID, in.Name, kcal(in.Calories))
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ settings, client *api.Client, _ *service.Session) error {
			items, err := client.ListFoods(ctx)
			if err != nil {
				return fmt.Errorf("list foods: %w", err)
			}
			if handled, err := printStructured(cmd, items); handled {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tNAME\tKCAL")
			for _, f := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", f.ID, day(f.Date), f.Name, kcal(f.Calories))
			}
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ settings, client *api.Client, _ *service.Session) error {
			if err := client.DeleteFood(ctx, args[0]); err != nil {
				return fmt.Errorf("delete food: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodDeleteCmd)

	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories consumed")
	foodAddCmd.Flags().StringVar(&foodDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = foodAddCmd.MarkFlagRequired("name")
	_ = foodAddCmd.MarkFlagRequired("calories")
}
