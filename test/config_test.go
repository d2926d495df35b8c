package test

import (
	"testing"

	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-commitment/cmd/commit/launcher"
	"github.com/rony4d/go-commitment/flags"
)

// helper to run MakeAllConfigs with a synthetic CLI context.

func runConfigFromArgs(t *testing.T, args []string) launcher.Config {

	t.Helper()

	app := cli.NewApp()

	app.HideHelp = true
	app.HideVersion = true

	// Register the subset of flags we want to exercise.

	commonFlags := flags.CommonFlags()
	termsFlags := flags.TermsFlags()
	simulationFlags := flags.SimulationFlags()

	app.Flags = append(app.Flags, commonFlags...)
	app.Flags = append(app.Flags, termsFlags...)
	app.Flags = append(app.Flags, simulationFlags...)

	var got launcher.Config

	app.Action = func(c *cli.Context) error {
		cfg, err := launcher.MakeAllConfigs(c)
		if err != nil {
			return err
		}
		got = cfg
		return nil
	}

	if err := app.Run(append([]string{"commit"}, args...)); err != nil {
		t.Fatalf("app.Run failed: %v", err)
	}
	return got
}

// TestMakeAllConfigs_flagOverrides verifies that every command-line flag we declare
// in the launcher correctly overrides the corresponding field in the aggregated
// Config struct. The test iterates through representative flag combinations and
// asserts that MakeAllConfigs applies them as expected.
//
// Each sub-test feeds custom CLI arguments into a synthetic app, invokes
// launcher.MakeAllConfigs, and checks the bits of the resulting struct that should
// have changed.
func TestMakeAllConfigs_flagOverrides(t *testing.T) {

	tests := []struct {
		name string                                  // descriptive name for the scenario
		args []string                                // CLI arguments to feed into MakeAllConfigs
		want func(t *testing.T, cfg launcher.Config) // assertion helper examining the final config
	}{
		{
			name: "defaults",
			args: []string{},
			want: func(t *testing.T, cfg launcher.Config) {
				if cfg.Run.Preset != "default" {
					t.Fatalf("Preset = %q, want default", cfg.Run.Preset)
				}
				if cfg.Logging.Verbosity != 4 {
					t.Fatalf("Verbosity = %d, want 4", cfg.Logging.Verbosity)
				}
				if cfg.Terms.MinTicket != nil {
					t.Fatalf("MinTicket = %v, want nil (keep preset value)", cfg.Terms.MinTicket)
				}
			},
		},

		{
			name: "logging and sentry",
			args: []string{"--log.format", "json", "--log.verbosity", "5", "--sentry.dsn", "https://key@sentry.local/1"},
			want: func(t *testing.T, cfg launcher.Config) {
				if cfg.Logging.Format != "json" {
					t.Fatalf("Format = %q, want json", cfg.Logging.Format)
				}
				if cfg.Logging.Verbosity != 5 {
					t.Fatalf("Verbosity = %d, want 5", cfg.Logging.Verbosity)
				}
				if cfg.Sentry.DSN != "https://key@sentry.local/1" {
					t.Fatalf("DSN = %q, want the flag value", cfg.Sentry.DSN)
				}
			},
		},

		{
			name: "preset and reward rate",
			args: []string{"--preset", "cap-bound", "--reward.rate", "3/2"},
			want: func(t *testing.T, cfg launcher.Config) {
				if cfg.Run.Preset != "cap-bound" {
					t.Fatalf("Preset = %q, want cap-bound", cfg.Run.Preset)
				}
				if cfg.Run.RewardRate == nil || cfg.Run.RewardRate.String() != "3/2" {
					t.Fatalf("RewardRate = %v, want 3/2", cfg.Run.RewardRate)
				}
			},
		},

		{
			name: "terms overrides",
			args: []string{"--terms.start", "1000", "--terms.end", "2000", "--terms.mincap", "500", "--terms.maxcap", "900", "--terms.rate", "218/100"},
			want: func(t *testing.T, cfg launcher.Config) {
				if cfg.Terms.Start != 1000 || cfg.Terms.End != 2000 {
					t.Fatalf("window = [%d, %d], want [1000, 2000]", cfg.Terms.Start, cfg.Terms.End)
				}
				if cfg.Terms.MinCap == nil || cfg.Terms.MinCap.Int64() != 500 {
					t.Fatalf("MinCap = %v, want 500", cfg.Terms.MinCap)
				}
				if cfg.Terms.MaxCap == nil || cfg.Terms.MaxCap.Int64() != 900 {
					t.Fatalf("MaxCap = %v, want 900", cfg.Terms.MaxCap)
				}
				if cfg.Terms.Rate == nil || cfg.Terms.Rate.String() != "218/100" {
					t.Fatalf("Rate = %v, want 218/100", cfg.Terms.Rate)
				}
				// minticket left at its -1 sentinel must stay a preset value
				if cfg.Terms.MinTicket != nil {
					t.Fatalf("MinTicket = %v, want nil", cfg.Terms.MinTicket)
				}
			},
		},

		{
			name: "bare integer rate",
			args: []string{"--terms.rate", "2"},
			want: func(t *testing.T, cfg launcher.Config) {
				if cfg.Terms.Rate == nil || cfg.Terms.Rate.String() != "2/1" {
					t.Fatalf("Rate = %v, want 2/1", cfg.Terms.Rate)
				}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := runConfigFromArgs(t, test.args) // build config using the test helper
			test.want(t, cfg)                      // apply the scenario-specific assertions
			t.Logf("args = %#v", test.args)        //	NOTE: this will only be printed if the test fails
		})

	}

}

// TestMakeAllConfigs_rejectsMalformedFraction covers the error path of the
// fraction-valued flags.
func TestMakeAllConfigs_rejectsMalformedFraction(t *testing.T) {

	app := cli.NewApp()
	app.HideHelp = true
	app.HideVersion = true
	app.Flags = append(app.Flags, flags.TermsFlags()...)
	app.Action = func(c *cli.Context) error {
		_, err := launcher.MakeAllConfigs(c)
		return err
	}

	if err := app.Run([]string{"commit", "--terms.rate", "not-a-fraction"}); err == nil {
		t.Fatal("expected an error for a malformed rate")
	}
	if err := app.Run([]string{"commit", "--terms.rate", "1/0"}); err == nil {
		t.Fatal("expected an error for a zero denominator")
	}
}
