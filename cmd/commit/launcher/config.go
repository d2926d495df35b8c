// This file maps CLI context to the launcher's config struct.

package launcher

import (
	"fmt"
	"math/big"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-commitment/commitment"
	"github.com/rony4d/go-commitment/utils/fraction"
)

// Config aggregates everything the launcher needs to run one lifecycle.
type Config struct {
	Logging LoggingConfig
	Sentry  SentryConfig
	Run     RunConfig
	Terms   TermsOverrides
}

type LoggingConfig struct {
	Verbosity int    // logrus level as an integer (0=panic .. 5=debug)
	Format    string // "text" or "json"
	Color     bool
}

type SentryConfig struct {
	DSN string // empty disables the sentry hook
}

type RunConfig struct {
	Preset     string             // lifecycle preset name
	RewardRate *fraction.Fraction // overrides the preset's issuance rate when set
}

// TermsOverrides carries optional flag-level overrides of the selected
// preset's terms. Nil/zero fields keep the preset value.
type TermsOverrides struct {
	Start     commitment.Timestamp
	End       commitment.Timestamp
	MinTicket *big.Int
	MinCap    *big.Int
	MaxCap    *big.Int
	Rate      *fraction.Fraction
}

// MakeAllConfigs merges defaults with CLI flag overrides into a single
// config struct.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if ctx.IsSet("log.format") {
		cfg.Logging.Format = ctx.String("log.format")
	}
	if ctx.IsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.Int("log.verbosity")
	}
	if ctx.IsSet("log.color") {
		cfg.Logging.Color = ctx.Bool("log.color")
	}
	if ctx.IsSet("sentry.dsn") {
		cfg.Sentry.DSN = ctx.String("sentry.dsn")
	}
	if ctx.IsSet("preset") {
		cfg.Run.Preset = ctx.String("preset")
	}
	if ctx.IsSet("reward.rate") {
		f, err := parseFraction(ctx.String("reward.rate"))
		if err != nil {
			return cfg, err
		}
		cfg.Run.RewardRate = &f
	}

	if ctx.IsSet("terms.start") {
		cfg.Terms.Start = commitment.Timestamp(ctx.Uint64("terms.start"))
	}
	if ctx.IsSet("terms.end") {
		cfg.Terms.End = commitment.Timestamp(ctx.Uint64("terms.end"))
	}
	if v := ctx.Int64("terms.minticket"); v >= 0 {
		cfg.Terms.MinTicket = big.NewInt(v)
	}
	if v := ctx.Int64("terms.mincap"); v >= 0 {
		cfg.Terms.MinCap = big.NewInt(v)
	}
	if v := ctx.Int64("terms.maxcap"); v >= 0 {
		cfg.Terms.MaxCap = big.NewInt(v)
	}
	if ctx.IsSet("terms.rate") {
		f, err := parseFraction(ctx.String("terms.rate"))
		if err != nil {
			return cfg, err
		}
		cfg.Terms.Rate = &f
	}
	return cfg, nil
}

// parseFraction parses "num/den" (or a bare integer as num/1).
func parseFraction(raw string) (fraction.Fraction, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), "/", 2)
	num, ok := new(big.Int).SetString(parts[0], 10)
	if !ok {
		return fraction.Fraction{}, fmt.Errorf("invalid fraction %q", raw)
	}
	den := big.NewInt(1)
	if len(parts) == 2 {
		den, ok = new(big.Int).SetString(parts[1], 10)
		if !ok {
			return fraction.Fraction{}, fmt.Errorf("invalid fraction %q", raw)
		}
	}
	f, err := fraction.New(num, den)
	if err != nil {
		return fraction.Fraction{}, fmt.Errorf("invalid fraction %q: %w", raw, err)
	}
	return f, nil
}
