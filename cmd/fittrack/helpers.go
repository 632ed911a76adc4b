package fittrack

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/saadjs/fittrack/internal/api"
	"github.com/saadjs/fittrack/internal/app"
	"github.com/saadjs/fittrack/internal/db"
	"github.com/saadjs/fittrack/internal/logging"
	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/service"
	"github.com/spf13/cobra"
)

const apiRetries = 2

type settings struct {
	APIURL        string
	Timeout       time.Duration
	DefaultWindow model.Window
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if env.DBPath != "" {
		return env.DBPath, nil
	}
	return app.DefaultDBPath()
}

// resolveSettings layers flags over environment over stored config over defaults.
func resolveSettings(cmd *cobra.Command, sqldb *sql.DB) (settings, error) {
	s := settings{APIURL: api.DefaultBaseURL, Timeout: api.DefaultTimeout, DefaultWindow: model.WindowDaily}
	cfg, err := service.ListConfig(sqldb)
	if err != nil {
		return s, err
	}
	if v := cfg[service.ConfigAPIURL]; v != "" {
		s.APIURL = v
	}
	if d, err := time.ParseDuration(cfg[service.ConfigTimeout]); err == nil && d > 0 {
		s.Timeout = d
	}
	if w, ok := model.ParseWindow(cfg[service.ConfigDefaultWindow]); ok {
		s.DefaultWindow = w
	}

	if env.APIURL != "" {
		s.APIURL = env.APIURL
	}
	if env.Timeout > 0 {
		s.Timeout = env.Timeout
	}

	if cmd.Flags().Changed("api-url") {
		s.APIURL = strings.TrimSpace(apiURL)
	}
	if cmd.Flags().Changed("timeout") {
		if timeout <= 0 {
			return s, fmt.Errorf("--timeout must be > 0")
		}
		s.Timeout = timeout
	}
	return s, nil
}

func newAPIClient(s settings, token string) *api.Client {
	return &api.Client{
		BaseURL:    s.APIURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: s.Timeout},
		Retries:    apiRetries,
		Logger:     logger,
	}
}

func fetchOptions(s settings) service.FetchOptions {
	return service.FetchOptions{Timeout: s.Timeout, EmptyOnFailure: offlineFallback, Logger: logger}
}

func commandContext(cmd *cobra.Command) context.Context {
	return logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))
}

// withAPI runs run with a client that carries no token.
func withAPI(cmd *cobra.Command, run func(context.Context, *sql.DB, *api.Client) error) error {
	return withDB(func(sqldb *sql.DB) error {
		s, err := resolveSettings(cmd, sqldb)
		if err != nil {
			return err
		}
		return run(commandContext(cmd), sqldb, newAPIClient(s, ""))
	})
}

// withSession runs run with a client authenticated as the logged-in user.
func withSession(cmd *cobra.Command, run func(context.Context, settings, *api.Client, *service.Session) error) error {
	return withDB(func(sqldb *sql.DB) error {
		sess, err := service.CurrentSession(sqldb)
		if err != nil {
			return err
		}
		if sess == nil {
			return fmt.Errorf("not logged in: run `fittrack auth login` first")
		}
		s, err := resolveSettings(cmd, sqldb)
		if err != nil {
			return err
		}
		err = run(commandContext(cmd), s, newAPIClient(s, sess.Token), sess)
		if api.IsUnauthorized(err) {
			return fmt.Errorf("%w: session rejected, run `fittrack auth login` again", err)
		}
		return err
	})
}

func parseDay(name, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", name, value)
	}
	return t.Add(12 * time.Hour), nil
}

func parseWindowFlag(value string) (model.Window, error) {
	w, ok := model.ParseWindow(value)
	if !ok {
		return "", fmt.Errorf("invalid window %q (use Daily, Weekly or Monthly)", value)
	}
	return w, nil
}

func optionalFloat(cmd *cobra.Command, name string, value float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v := value
	return &v
}
