package fittrack

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"

	dateLayout = "2006-01-02"
)

// printStructured writes v as JSON or YAML and reports whether it did.
// Table output is left to the caller.
func printStructured(cmd *cobra.Command, v any) (bool, error) {
	switch outputFormat {
	case outputJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("marshal json output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return true, nil
	case outputYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("marshal yaml output: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(b))
		return true, nil
	default:
		return false, nil
	}
}

func kcal(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func minutes(v float64) string {
	if v == math.Trunc(v) {
		return humanize.Comma(int64(v))
	}
	return humanize.FormatFloat("#,###.#", v)
}

func day(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(dateLayout)
}
