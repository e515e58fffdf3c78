// Package cmd implements the CLI application to track a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/etnz/folio"
	"github.com/etnz/folio/config"
	"github.com/etnz/folio/quote"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&allocationCmd{}, "reports")
	c.Register(&analysisCmd{}, "reports")
	c.Register(&healthCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")
	c.Register(&insightsCmd{}, "reports")

	c.Register(&fetchCmd{}, "quotes")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", defaultConfigFile(), "Path to the TOML configuration file")
	ledgerFile = flag.String("ledger-file", "", "Path to the ledger file containing transactions (JSONL format)")
	quotesFile = flag.String("quotes-file", "", "Path to the quotes snapshot (JSON format)")
	currency   = flag.String("currency", "", "Reporting currency (ISO 4217 code)")
	privacy    = flag.Bool("privacy", false, "Mask every monetary amount")
	codes      = flag.Bool("codes", false, "Format amounts with the currency code instead of its symbol")
	logLevel   = flag.String("log-level", "", "Log level (trace, debug, info, warn, error)")
)

// defaultConfigFile returns the folio.toml of the user configuration directory.
func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "folio.toml"
	}
	return filepath.Join(dir, "folio", "folio.toml")
}

// Config loads the configuration once, applies the flags, and sets up the logger.
var Config = sync.OnceValues(func() (*config.Config, error) {
	cfg, err := config.LoadFromFile(*configFile)
	if err != nil {
		return nil, err
	}
	config.ApplyFlagOverrides(cfg, config.Overrides{
		Ledger:   *ledgerFile,
		Quotes:   *quotesFile,
		Currency: *currency,
		Privacy:  *privacy,
		LogLevel: *logLevel,
	})
	if *codes {
		cfg.Display.Symbol = false
	}
	setupLogger(cfg.Logging.Level)
	return cfg, nil
})

// renderOptions returns the presentation toggles of the configuration.
func renderOptions(cfg *config.Config) renderer.Options {
	return renderer.Options{Privacy: cfg.Display.Privacy, Symbol: cfg.Display.Symbol}
}

// DecodeLedger reads the ledger file. A missing file is an empty ledger.
// Lines without an id are given one and the file is saved right away, so
// the ids are stable across runs.
func DecodeLedger(cfg *config.Config) (*folio.Ledger, error) {
	f, err := os.Open(cfg.Files.Ledger)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug().Str("file", cfg.Files.Ledger).Msg("ledger does not exist, starting empty")
		return folio.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger %q: %w", cfg.Files.Ledger, err)
	}
	ledger, err := folio.DecodeLedger(f)
	f.Close()
	if err != nil {
		return nil, err
	}
	if n := ledger.AssignedIDs(); n > 0 {
		if err := EncodeLedger(cfg, ledger); err != nil {
			return nil, fmt.Errorf("could not save assigned ids: %w", err)
		}
		logger.Info().Int("count", n).Str("file", cfg.Files.Ledger).Msg("assigned ids to transactions")
	}
	return ledger, nil
}

// EncodeLedger rewrites the ledger file, replacing it atomically.
func EncodeLedger(cfg *config.Config, ledger *folio.Ledger) error {
	filename := cfg.Files.Ledger
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".ledger-*.jsonl")
	if err != nil {
		return fmt.Errorf("could not write ledger %q: %w", filename, err)
	}
	defer os.Remove(tmp.Name())
	if err := folio.EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write ledger %q: %w", filename, err)
	}
	return os.Rename(tmp.Name(), filename)
}

// appendTransaction appends a single transaction to the ledger file.
func appendTransaction(cfg *config.Config, tx folio.Transaction) subcommands.ExitStatus {
	filename := cfg.Files.Ledger
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := folio.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	logger.Info().Str("id", tx.ID).Str("symbol", tx.Symbol).Str("file", filename).Msg("transaction appended")
	fmt.Fprintf(os.Stderr, "Successfully appended transaction %s to %s\n", tx.ID, filename)
	return subcommands.ExitSuccess
}

// OpenPortfolio loads the configuration, the ledger and the quotes.
func OpenPortfolio() (*folio.Portfolio, *config.Config, error) {
	cfg, err := Config()
	if err != nil {
		return nil, nil, err
	}
	ledger, err := DecodeLedger(cfg)
	if err != nil {
		return nil, nil, err
	}
	quotes, err := quote.Load(cfg.Files.Quotes)
	if err != nil {
		return nil, nil, err
	}
	p, err := folio.NewPortfolio(ledger, quotes, cfg.Currency)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug().Int("transactions", ledger.Len()).Int("quotes", quotes.Len()).Str("currency", cfg.Currency).Msg("portfolio loaded")
	return p, cfg, nil
}
