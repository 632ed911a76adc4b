package fittrack

import (
	"context"
	"fmt"
	"strings"

	"github.com/saadjs/fittrack/internal/api"
	"github.com/saadjs/fittrack/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ settings, client *api.Client, _ *service.Session) error {
			p, err := client.Profile(ctx)
			if err != nil {
				return fmt.Errorf("get profile: %w", err)
			}
			return printProfile(cmd, p)
		})
	},
}

var (
	profileName       string
	profileAge        int
	profileHeight     float64
	profileWeight     float64
	profilePreference string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := api.Profile{}
		updates := 0
		if cmd.Flags().Changed("name") {
			in.Name = strings.TrimSpace(profileName)
			updates++
		}
		if cmd.Flags().Changed("age") {
			if profileAge <= 0 {
				return fmt.Errorf("--age must be > 0")
			}
			in.Age = profileAge
			updates++
		}
		if cmd.Flags().Changed("height") {
			if profileHeight <= 0 {
				return fmt.Errorf("--height must be > 0")
			}
			in.HeightCm = profileHeight
			updates++
		}
		if cmd.Flags().Changed("weight") {
			if profileWeight <= 0 {
				return fmt.Errorf("--weight must be > 0")
			}
			in.WeightKg = profileWeight
			updates++
		}
		if cmd.Flags().Changed("preference") {
			in.Preference = strings.TrimSpace(profilePreference)
			updates++
		}
		if updates == 0 {
			return fmt.Errorf("set at least one flag")
		}
		return withSession(cmd, func(ctx context.Context, _ settings, client *api.Client, _ *service.Session) error {
			p, err := client.UpdateProfile(ctx, in)
			if err != nil {
				return fmt.Errorf("update profile: %w", err)
			}
			return printProfile(cmd, p)
		})
	},
}

func printProfile(cmd *cobra.Command, p api.Profile) error {
	if handled, err := printStructured(cmd, p); handled {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:\t%s\n", p.Name)
	fmt.Fprintf(out, "Email:\t%s\n", p.Email)
	if p.Age > 0 {
		fmt.Fprintf(out, "Age:\t%d\n", p.Age)
	}
	if p.HeightCm > 0 {
		fmt.Fprintf(out, "Height:\t%.1f cm\n", p.HeightCm)
	}
	if p.WeightKg > 0 {
		fmt.Fprintf(out, "Weight:\t%.1f kg\n", p.WeightKg)
	}
	if p.Preference != "" {
		fmt.Fprintf(out, "Preference:\t%s\n", p.Preference)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)

	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileUpdateCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileUpdateCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileUpdateCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileUpdateCmd.Flags().StringVar(&profilePreference, "preference", "", "Workout preference (e.g. Cardio, Strength)")
}
