package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type healthCmd struct {
	date string
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "score the portfolio concentration, diversification and returns" }
func (*healthCmd) Usage() string {
	return `pft health [-d <date>]

  Scores the portfolio out of 100 across four dimensions of 25 points each:
  concentration, diversification, profitability and XIRR quality.
`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Valuation date of the XIRR")
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := valuationTime(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, cfg, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HealthMarkdown(p.Health(now), renderOptions(cfg)))
	return subcommands.ExitSuccess
}
