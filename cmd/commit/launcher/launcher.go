package launcher

import (
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-commitment/flags"
)

var app = flags.NewApp()

func init() {
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Flags = append(app.Flags, flags.TermsFlags()...)
	app.Flags = append(app.Flags, flags.SimulationFlags()...)
	app.Action = run
}

// Launch parses flags and runs one commitment lifecycle.
func Launch(args []string) error {
	return app.Run(args)
}

func run(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	return runLifecycle(cfg)
}
