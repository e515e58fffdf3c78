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

type allocationCmd struct {
	by    string
	order string
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the portfolio value broken down by a dimension" }
func (*allocationCmd) Usage() string {
	return `pft allocation [-by <sector|company|asset type|broker>] [-sort <name|value|pnl|weight>]

  Groups the holdings by sector, company, asset type or broker and displays
  the value, invested capital, profit and weight of each group. Holdings
  without a value for the dimension are grouped under "Other".
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "sector", "Dimension: sector, company, asset type, broker")
	f.StringVar(&c.order, "sort", "value", "Sort order: name, value, pnl, weight")
}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dim, err := folio.ParseDimension(c.by)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	order, err := folio.ParseBucketOrder(c.order)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	p, cfg, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AllocationMarkdown(p.Allocation(dim), order, renderOptions(cfg)))
	return subcommands.ExitSuccess
}
