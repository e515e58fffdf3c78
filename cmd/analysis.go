package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type analysisCmd struct {
	period string
	by     string
}

func (*analysisCmd) Name() string     { return "analysis" }
func (*analysisCmd) Synopsis() string { return "display the capital invested per year or per month" }
func (*analysisCmd) Usage() string {
	return `pft analysis [-p <yearly|monthly>] [-by <sector|company|asset type|broker>]

  Groups the purchases by calendar period, newest first, with the average
  monthly investment and its change from the previous period with activity.
  Yearly periods are broken down by the -by dimension.
`
}

func (c *analysisCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "yearly", "Period: yearly or monthly")
	f.StringVar(&c.by, "by", "sector", "Dimension of the yearly distribution")
}

func (c *analysisCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := folio.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	dim, err := folio.ParseDimension(c.by)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	p, cfg, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AnalysisMarkdown(p.Analysis(period, dim), period, renderOptions(cfg)))
	return subcommands.ExitSuccess
}
