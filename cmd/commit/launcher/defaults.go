package launcher

// Defaults bundles the baseline configuration values the launcher uses
// before CLI flags override them.

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Verbosity: 4,      // info
			Format:    "text", // human-readable; "json" for machine ingestion
			Color:     false,
		},
		Sentry: SentryConfig{
			DSN: "", // error reporting disabled unless a DSN is supplied
		},
		Run: RunConfig{
			Preset: "default",
		},
	}
}
