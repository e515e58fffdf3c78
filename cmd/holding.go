package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type holdingsCmd struct {
	symbol string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the open positions valued at the latest quotes" }
func (*holdingsCmd) Usage() string {
	return `pft holdings [-s <symbol>]

  Displays one row per open position: quantity, average price, current value,
  profit and loss, day change, and weight in the portfolio. Positions without
  a quote are valued at their last transaction price.

  With -s, displays the detail of a single position.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Display the detail of this symbol only")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, cfg, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	holdings := p.Holdings()
	opts := renderOptions(cfg)

	if c.symbol == "" {
		printMarkdown(renderer.HoldingsMarkdown(holdings, opts))
		return subcommands.ExitSuccess
	}
	for _, h := range holdings {
		if strings.EqualFold(h.Symbol, c.symbol) {
			printMarkdown(renderer.HoldingMarkdown(h, opts))
			return subcommands.ExitSuccess
		}
	}
	fmt.Fprintf(os.Stderr, "Error: no open position in %q\n", c.symbol)
	return subcommands.ExitFailure
}
