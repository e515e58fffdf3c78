package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type insightsCmd struct{}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "display the top gainer, top loser and biggest mover" }
func (*insightsCmd) Usage() string {
	return `pft insights

  Displays the holding with the best and the worst profit percentage, and the
  holding with the largest day change.
`
}

func (*insightsCmd) SetFlags(f *flag.FlagSet) {}

func (*insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, cfg, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.InsightsMarkdown(p.Insights(), renderOptions(cfg)))
	return subcommands.ExitSuccess
}
