package fittrack

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/saadjs/fittrack/internal/api"
	"github.com/saadjs/fittrack/internal/service"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Register, log in and manage the stored session",
}

var (
	authName     string
	authEmail    string
	authPassword string
)

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(authName) == "" {
			return fmt.Errorf("--name is required")
		}
		return withAPI(cmd, func(ctx context.Context, sqldb *sql.DB, client *api.Client) error {
			res, err := client.Register(ctx, strings.TrimSpace(authName), strings.TrimSpace(authEmail), authPassword)
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}
			return startSession(cmd, sqldb, res, "Registered")
		})
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAPI(cmd, func(ctx context.Context, sqldb *sql.DB, client *api.Client) error {
			res, err := client.Login(ctx, strings.TrimSpace(authEmail), authPassword)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			return startSession(cmd, sqldb, res, "Logged in")
		})
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.ClearSession(sqldb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		})
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, _ settings, client *api.Client, sess *service.Session) error {
			user, err := client.Me(ctx)
			if err != nil {
				return fmt.Errorf("whoami: %w", err)
			}
			if handled, err := printStructured(cmd, user); handled {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
			if !sess.LoggedInAt.IsZero() {
				fmt.Fprintf(cmd.OutOrStdout(), "logged in %s\n", humanize.Time(sess.LoggedInAt))
			}
			return nil
		})
	},
}

func startSession(cmd *cobra.Command, sqldb *sql.DB, res api.AuthResult, verb string) error {
	if err := service.SaveSession(sqldb, res.Token, res.User); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s as %s <%s>\n", verb, res.User.Name, res.User.Email)
	return nil
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authRegisterCmd, authLoginCmd, authLogoutCmd, authWhoamiCmd)

	authRegisterCmd.Flags().StringVar(&authName, "name", "", "Display name")
	for _, c := range []*cobra.Command{authRegisterCmd, authLoginCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "Account email")
		c.Flags().StringVar(&authPassword, "password", "", "Account password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
}
