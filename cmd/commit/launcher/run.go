package launcher

import (
	"fmt"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-commitment/integration"
)

// makeLogger builds the process logger from config: level, format, optional
// sentry hook. Errors and worse are forwarded to sentry when a DSN is set.
func makeLogger(cfg Config) (*logrus.Logger, error) {
	log := logrus.New()

	if cfg.Logging.Verbosity < 0 || cfg.Logging.Verbosity > int(logrus.DebugLevel) {
		return nil, fmt.Errorf("invalid log verbosity %d", cfg.Logging.Verbosity)
	}
	log.SetLevel(logrus.Level(cfg.Logging.Verbosity))

	switch cfg.Logging.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Logging.Color})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Logging.Format)
	}

	if cfg.Sentry.DSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.Sentry.DSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return nil, fmt.Errorf("attach sentry hook: %w", err)
		}
		log.AddHook(hook)
	}
	return log, nil
}

// runLifecycle selects the preset, applies flag overrides, wires the
// reference environment, replays the schedule and finalizes, logging every
// transition along the way.
func runLifecycle(cfg Config) error {
	log, err := makeLogger(cfg)
	if err != nil {
		return err
	}

	preset, err := integration.GetPresetByName(cfg.Run.Preset)
	if err != nil {
		return err
	}
	applyTermsOverrides(&preset, cfg.Terms)
	if cfg.Run.RewardRate != nil {
		preset.RewardRate = cfg.Run.RewardRate.Copy()
	}

	log.WithField("preset", preset.Name).Info("starting commitment lifecycle")
	env, err := integration.BuildEnvironment(preset, log)
	if err != nil {
		return fmt.Errorf("build environment: %w", err)
	}

	outcome, err := env.Run()
	if err != nil {
		return fmt.Errorf("run lifecycle: %w", err)
	}

	log.WithFields(logrus.Fields{
		"accepted":    outcome.Accepted,
		"rejected":    outcome.Rejected,
		"successful":  outcome.Successful,
		"finalAmount": outcome.FinalAmount,
		"journal":     env.Journal.String(),
	}).Info("commitment lifecycle complete")
	return nil
}

// applyTermsOverrides merges non-zero flag overrides into the preset.
func applyTermsOverrides(p *integration.Preset, o TermsOverrides) {
	if o.Start != 0 {
		p.Start = o.Start
	}
	if o.End != 0 {
		p.End = o.End
	}
	if o.MinTicket != nil {
		p.MinTicket = o.MinTicket
	}
	if o.MinCap != nil {
		p.MinCap = o.MinCap
	}
	if o.MaxCap != nil {
		p.MaxCap = o.MaxCap
	}
	if o.Rate != nil {
		p.Rate = o.Rate.Copy()
	}
}
