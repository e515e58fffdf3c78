package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// tradeFlags are the flags shared by buy, sell and edit.
type tradeFlags struct {
	date     string
	symbol   string
	quantity float64
	price    float64
	currency string
	broker   string
}

func (c *tradeFlags) SetFlags(f *flag.FlagSet, date string) {
	f.StringVar(&c.date, "d", date, "Transaction date (YYYY-MM-DD, or relative like -3d)")
	f.StringVar(&c.symbol, "s", "", "Instrument symbol")
	f.Float64Var(&c.quantity, "q", 0, "Number of units")
	f.Float64Var(&c.price, "p", 0, "Price per unit")
	f.StringVar(&c.currency, "c", "", "Currency of the price (informational)")
	f.StringVar(&c.broker, "b", "", "Broker label")
}

// record builds a trade, adds it to the ledger, and appends it to the ledger file.
func (c *tradeFlags) record(f *flag.FlagSet, cmd folio.CommandType) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := folio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
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

	tx := folio.Transaction{
		Command:  cmd,
		Date:     day,
		Symbol:   c.symbol,
		Quantity: folio.Q(c.quantity),
		Price:    decimal.NewFromFloat(c.price),
		Currency: c.currency,
		Broker:   c.broker,
	}
	// adding to the loaded ledger validates the trade and assigns a unique id.
	tx, err = ledger.Add(tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(cfg, tx)
}

// --- Buy Command ---

type buyCmd struct{ tradeFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of units to open or add to a position" }
func (*buyCmd) Usage() string {
	return `pft buy [-d <date>] -s <symbol> -q <quantity> -p <price> [-c <currency>] [-b <broker>]

  Records a purchase. The amount (quantity × price) is new capital invested.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.tradeFlags.SetFlags(f, "0d") }

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(f, folio.CmdBuy)
}

// --- Sell Command ---

type sellCmd struct{ tradeFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of units to trim or close a position" }
func (*sellCmd) Usage() string {
	return `pft sell [-d <date>] -s <symbol> -q <quantity> -p <price> [-c <currency>] [-b <broker>]

  Records a sale. The proceeds (quantity × price) are withdrawn from the
  net capital invested.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.tradeFlags.SetFlags(f, "0d") }

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(f, folio.CmdSell)
}

// --- Edit Command ---

type editCmd struct {
	tradeFlags
	command string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify a recorded transaction" }
func (*editCmd) Usage() string {
	return `pft edit [-t <buy|sell>] [-d <date>] [-s <symbol>] [-q <quantity>] [-p <price>] [-c <currency>] [-b <broker>] <id>

  Modifies the transaction with the given id. Only the flags that are set
  replace the recorded values. Ledger lines written without an id are given
  one, and saved, the first time the ledger is read.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.tradeFlags.SetFlags(f, "")
	f.StringVar(&c.command, "t", "", "Transaction type (buy or sell)")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
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

	id := f.Arg(0)
	tx, ok := ledger.Get(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: transaction %q: %v\n", id, folio.ErrNotFound)
		return subcommands.ExitFailure
	}

	var errs error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "t":
			cmd, err := folio.ParseCommandType(c.command)
			errs = errors.Join(errs, err)
			tx.Command = cmd
		case "d":
			day, err := folio.ParseDate(c.date)
			errs = errors.Join(errs, err)
			tx.Date = day
		case "s":
			tx.Symbol = c.symbol
		case "q":
			tx.Quantity = folio.Q(c.quantity)
		case "p":
			tx.Price = decimal.NewFromFloat(c.price)
		case "c":
			tx.Currency = c.currency
		case "b":
			tx.Broker = c.broker
		}
	})
	if errs != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", errs)
		return subcommands.ExitUsageError
	}
	if err := ledger.Update(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := EncodeLedger(cfg, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	logger.Info().Str("id", id).Msg("transaction updated")
	return subcommands.ExitSuccess
}

// --- Remove Command ---

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete recorded transactions" }
func (*rmCmd) Usage() string {
	return `pft rm <id>...

  Deletes the transactions with the given ids. Nothing is deleted if one of
  the ids is unknown.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (*rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
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
	for _, id := range f.Args() {
		if err := ledger.Remove(strings.TrimSpace(id)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := EncodeLedger(cfg, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	logger.Info().Strs("ids", f.Args()).Msg("transactions removed")
	return subcommands.ExitSuccess
}
