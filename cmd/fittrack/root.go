package fittrack

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/saadjs/fittrack/internal/envstruct"
	"github.com/saadjs/fittrack/internal/logging"
	"github.com/spf13/cobra"
)

var (
	dbPath          string
	apiURL          string
	timeout         time.Duration
	outputFormat    string
	verbose         bool
	offlineFallback bool
)

type envConfig struct {
	APIURL   string        `env:"FITTRACK_API_URL" envDefault:""`
	DBPath   string        `env:"FITTRACK_DB" envDefault:""`
	Timeout  time.Duration `env:"FITTRACK_TIMEOUT" envDefault:"0s"`
	LogLevel string        `env:"FITTRACK_LOG_LEVEL" envDefault:"warn"`
}

var (
	env     envConfig
	logger  = slog.New(slog.DiscardHandler)
	nowFunc = time.Now
)

var rootCmd = &cobra.Command{
	Use:           "fittrack",
	Short:         "fittrack logs workouts and meals and tracks fitness goals",
	Long:          "fittrack is a terminal client for the fitness tracker API: log workouts and food, set goals, and see progress against them.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite state file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Fitness API base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "API request timeout (e.g. 10s)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", outputTable, "Output format: table, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log API requests to stderr")
	rootCmd.PersistentFlags().BoolVar(&offlineFallback, "offline-fallback", false, "Treat unreachable records as empty instead of failing")
}

func setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	env = envConfig{}
	if err := envstruct.Populate(&env, os.LookupEnv); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	level := slog.LevelDebug
	if !verbose {
		parsed, err := logging.ParseLevel(env.LogLevel)
		if err != nil {
			return err
		}
		level = parsed
	}
	logger = logging.New(cmd.ErrOrStderr(), level)

	switch outputFormat {
	case outputTable, outputJSON, outputYAML:
	default:
		return fmt.Errorf("invalid --output %q (use table, json or yaml)", outputFormat)
	}
	return nil
}
