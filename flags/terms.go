package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// TermsFlags covers the commitment term parameters. Amounts are plain
// integers in payment-asset units; rates are "num/den" fraction strings.

func TermsFlags() []cli.Flag {
	return []cli.Flag{
		cli.Uint64Flag{
			Name:  "terms.start",
			Usage: "Window start time (unix seconds; 0 keeps the preset value)",
		},
		cli.Uint64Flag{
			Name:  "terms.end",
			Usage: "Window end time (unix seconds; 0 keeps the preset value)",
		},
		cli.Int64Flag{
			Name:  "terms.minticket",
			Usage: "Minimum single contribution, in payment-asset units",
			Value: -1,
		},
		cli.Int64Flag{
			Name:  "terms.mincap",
			Usage: "Minimum total for a successful outcome",
			Value: -1,
		},
		cli.Int64Flag{
			Name:  "terms.maxcap",
			Usage: "Hard ceiling on the total raised",
			Value: -1,
		},
		cli.StringFlag{
			Name:  "terms.rate",
			Usage: "Payment to reference-currency rate as a fraction (e.g. 218/100)",
		},
	}
}

// SimulationFlags isolates lifecycle-simulation knobs.
func SimulationFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "preset",
			Usage: "Lifecycle preset to run (default|funded|undersubscribed|cap-bound)",
			Value: "default",
		},
		cli.StringFlag{
			Name:  "reward.rate",
			Usage: "Payment to reward issuance rate as a fraction (e.g. 2/1)",
		},
	}
}
