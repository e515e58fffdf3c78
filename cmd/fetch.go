package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/etnz/folio/quote"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	timeout time.Duration
	all     bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "refresh the quotes of the held symbols" }
func (*fetchCmd) Usage() string {
	return `pft fetch [-all] [-timeout <duration>] [<symbol>...]

  Fetches the latest quote of each symbol from the configured endpoint and
  saves the quotes file. By default, the symbols of the open positions are
  fetched; -all fetches every symbol of the ledger.

  A symbol that cannot be fetched keeps its previous quote.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.timeout, "timeout", 10*time.Second, "HTTP timeout of each request")
	f.BoolVar(&c.all, "all", false, "Fetch every symbol of the ledger, including closed positions")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, cfg, err := OpenPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if cfg.Quotes.URL == "" {
		fmt.Fprintln(os.Stderr, "Error: no quote endpoint configured, set quotes.url in the configuration")
		return subcommands.ExitFailure
	}

	symbols := f.Args()
	if len(symbols) == 0 {
		if c.all {
			symbols = slices.Collect(p.Ledger.Symbols())
		} else {
			for _, h := range p.Holdings() {
				symbols = append(symbols, h.Symbol)
			}
		}
	}

	fetcher := &quote.Fetcher{
		Client: &http.Client{Timeout: c.timeout},
		URL:    cfg.Quotes.URL,
		Paths:  cfg.Quotes.Paths,
		Logger: logger,
	}
	quotes, err := fetcher.Refresh(ctx, symbols, p.Quotes)
	if err != nil {
		// failed symbols keep their previous quote, the table is saved anyway.
		fmt.Fprintf(os.Stderr, "Warning: some quotes could not be refreshed: %v\n", err)
	}
	if err := quote.Save(cfg.Files.Quotes, quotes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Saved %d quotes to %s\n", quotes.Len(), cfg.Files.Quotes)
	return subcommands.ExitSuccess
}
