package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	start  string
	date   string
	symbol string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "transactions" }
func (*txCmd) Synopsis() string { return "list the transactions of the ledger" }
func (*txCmd) Usage() string {
	return `pft transactions [-s <start_date>] [-d <end_date>] [-symbol <symbol>] [-head <n>] [-tail <n>]

  Lists transactions from the ledger in chronological order, with options for
  filtering and limiting the output. Ledger lines written without an id are
  given one, and saved, the first time the ledger is read.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.start, "s", "", "The start date of the range.")
	f.StringVar(&p.date, "d", "", "The end date of the range.")
	f.StringVar(&p.symbol, "symbol", "", "Only list the transactions of this symbol.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	cfg, err := Config()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, err := DecodeLedger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	accept := func(folio.Transaction) bool { return true }
	if p.start != "" || p.date != "" {
		start, end, err := dateRange(p.start, p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		accept = func(tx folio.Transaction) bool { return !tx.Date.Before(start) && !tx.Date.After(end) }
	}

	var transactions []folio.Transaction
	for _, tx := range ledger.Transactions() {
		if p.symbol != "" && !strings.EqualFold(tx.Symbol, p.symbol) {
			continue
		}
		if accept(tx) {
			transactions = append(transactions, tx)
		}
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(transactions, renderOptions(cfg)))

	return subcommands.ExitSuccess
}
