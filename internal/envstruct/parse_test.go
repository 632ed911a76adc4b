package envstruct_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/saadjs/fittrack/internal/envstruct"
)

func TestPopulate(t *testing.T) {
	unset := func(_ string) (string, bool) { return "", false }

	tests := []struct {
		name      string
		v         any
		lookupEnv func(string) (string, bool)
		want      any
		wantErr   error
	}{
		{
			name:      "nil",
			v:         nil,
			lookupEnv: unset,
			wantErr:   envstruct.ErrInvalidValue,
		},
		{
			name:      "not pointer",
			v:         struct{}{},
			lookupEnv: unset,
			wantErr:   envstruct.ErrInvalidValue,
		},
		{
			name: "missing without default",
			v: &struct {
				APIURL string `env:"FITTRACK_API_URL"`
			}{},
			lookupEnv: unset,
			wantErr:   envstruct.ErrEnvNotSet,
		},
		{
			name: "string from env",
			v: &struct {
				APIURL string `env:"FITTRACK_API_URL"`
				Other  string
			}{},
			lookupEnv: func(s string) (string, bool) { return strings.ToLower(s), true },
			want: &struct {
				APIURL string `env:"FITTRACK_API_URL"`
				Other  string
			}{APIURL: "fittrack_api_url"},
		},
		{
			name: "typed defaults",
			v: &struct {
				Timeout time.Duration `env:"FITTRACK_TIMEOUT" envDefault:"12s"`
				Verbose bool          `env:"FITTRACK_VERBOSE" envDefault:"false"`
				Retries int           `env:"FITTRACK_RETRIES" envDefault:"2"`
			}{},
			lookupEnv: unset,
			want: &struct {
				Timeout time.Duration `env:"FITTRACK_TIMEOUT" envDefault:"12s"`
				Verbose bool          `env:"FITTRACK_VERBOSE" envDefault:"false"`
				Retries int           `env:"FITTRACK_RETRIES" envDefault:"2"`
			}{Timeout: 12 * time.Second, Retries: 2},
		},
		{
			name: "unparseable duration",
			v: &struct {
				Timeout time.Duration `env:"FITTRACK_TIMEOUT"`
			}{},
			lookupEnv: func(_ string) (string, bool) { return "soon", true },
			wantErr:   envstruct.ErrParse,
		},
		{
			name: "unsupported type",
			v: &struct {
				Ratio float64 `env:"FITTRACK_RATIO" envDefault:"1"`
			}{},
			lookupEnv: unset,
			wantErr:   envstruct.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := envstruct.Populate(tt.v, tt.lookupEnv)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Populate() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Populate() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, tt.v); diff != "" {
				t.Errorf("Populate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
