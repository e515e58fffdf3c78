package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/folio"
	"github.com/etnz/folio/config"
	"github.com/google/subcommands"
)

// useTempConfig points the commands at a fresh ledger and quotes file.
func useTempConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.NewDefaultConfig()
	cfg.Files.Ledger = filepath.Join(dir, "transactions.jsonl")
	cfg.Files.Quotes = filepath.Join(dir, "quotes.json")

	old := Config
	Config = func() (*config.Config, error) { return cfg, nil }
	t.Cleanup(func() { Config = old })
	return cfg
}

// run parses args for c and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s %v: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}

func readLedger(t *testing.T, cfg *config.Config) []folio.Transaction {
	t.Helper()
	ledger, err := DecodeLedger(cfg)
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	return ledger.Transactions()
}

func TestBuySellEditRemove(t *testing.T) {
	cfg := useTempConfig(t)

	if got := run(t, &buyCmd{}, "-d", "2024-01-10", "-s", "acme", "-q", "10", "-p", "100", "-b", "Zerodha"); got != subcommands.ExitSuccess {
		t.Fatalf("buy = %v, want ExitSuccess", got)
	}
	if got := run(t, &sellCmd{}, "-d", "2024-02-10", "-s", "ACME", "-q", "4", "-p", "120"); got != subcommands.ExitSuccess {
		t.Fatalf("sell = %v, want ExitSuccess", got)
	}

	txs := readLedger(t, cfg)
	if len(txs) != 2 {
		t.Fatalf("ledger has %d transactions, want 2", len(txs))
	}
	if txs[0].Symbol != "ACME" || txs[0].Command != folio.CmdBuy || txs[0].Broker != "Zerodha" || txs[0].ID == "" {
		t.Errorf("buy recorded as %+v", txs[0])
	}
	if txs[1].Command != folio.CmdSell || !txs[1].Quantity.Equal(folio.Q(4)) {
		t.Errorf("sell recorded as %+v", txs[1])
	}

	// only the flags that are set are edited
	if got := run(t, &editCmd{}, "-q", "5", txs[1].ID); got != subcommands.ExitSuccess {
		t.Fatalf("edit = %v, want ExitSuccess", got)
	}
	edited := readLedger(t, cfg)[1]
	if !edited.Quantity.Equal(folio.Q(5)) || edited.Symbol != "ACME" || !edited.Date.Equal(txs[1].Date) {
		t.Errorf("edited transaction = %+v", edited)
	}

	if got := run(t, &rmCmd{}, txs[0].ID); got != subcommands.ExitSuccess {
		t.Fatalf("rm = %v, want ExitSuccess", got)
	}
	left := readLedger(t, cfg)
	if len(left) != 1 || left[0].ID != txs[1].ID {
		t.Errorf("ledger after rm = %+v", left)
	}
}

func TestTradeValidation(t *testing.T) {
	useTempConfig(t)
	tests := []struct {
		name string
		args []string
	}{
		{"missing symbol", []string{"-q", "1", "-p", "10"}},
		{"zero quantity", []string{"-s", "ACME", "-p", "10"}},
		{"negative price", []string{"-s", "ACME", "-q", "1", "-p", "-3"}},
		{"bad date", []string{"-d", "yesterday", "-s", "ACME", "-q", "1", "-p", "10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(t, &buyCmd{}, tt.args...); got != subcommands.ExitUsageError {
				t.Errorf("buy %v = %v, want ExitUsageError", tt.args, got)
			}
		})
	}
}

func TestEditAndRemoveUnknownID(t *testing.T) {
	cfg := useTempConfig(t)
	if got := run(t, &buyCmd{}, "-s", "ACME", "-q", "1", "-p", "10"); got != subcommands.ExitSuccess {
		t.Fatalf("buy = %v", got)
	}
	if got := run(t, &editCmd{}, "-q", "2", "nope"); got != subcommands.ExitFailure {
		t.Errorf("edit unknown id = %v, want ExitFailure", got)
	}
	if got := run(t, &rmCmd{}, "nope"); got != subcommands.ExitFailure {
		t.Errorf("rm unknown id = %v, want ExitFailure", got)
	}
	if got := len(readLedger(t, cfg)); got != 1 {
		t.Errorf("ledger has %d transactions, want 1", got)
	}
}

func TestEncodeLedger_Rewrites(t *testing.T) {
	cfg := useTempConfig(t)
	if err := os.WriteFile(cfg.Files.Ledger, []byte("garbage\n"), 0644); err != nil {
		t.Fatal(err)
	}
	ledger := folio.NewLedger(folio.NewBuy(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "ACME", 1, 10))
	if err := EncodeLedger(cfg, ledger); err != nil {
		t.Fatalf("EncodeLedger() unexpected error: %v", err)
	}
	data, err := os.ReadFile(cfg.Files.Ledger)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "garbage") || strings.Count(string(data), "\n") != 1 {
		t.Errorf("ledger file = %q", data)
	}
}

func TestDateRange(t *testing.T) {
	from, to, err := dateRange("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("dateRange() unexpected error: %v", err)
	}
	if !from.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v", from)
	}
	if to.Before(time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)) || !to.Before(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %v, want the end of 2024-01-31", to)
	}
	if _, _, err := dateRange("2024-02-01", "2024-01-01"); err == nil {
		t.Error("dateRange() with start after end want error")
	}
	if _, _, err := dateRange("soon", ""); err == nil {
		t.Error("dateRange() with an invalid start want error")
	}
}

func TestReportsRunOnEmptyPortfolio(t *testing.T) {
	useTempConfig(t)
	for _, c := range []subcommands.Command{
		&txCmd{}, &holdingsCmd{}, &summaryCmd{}, &allocationCmd{}, &analysisCmd{}, &healthCmd{}, &projectCmd{}, &insightsCmd{},
	} {
		if got := run(t, c); got != subcommands.ExitSuccess {
			t.Errorf("%s on an empty portfolio = %v, want ExitSuccess", c.Name(), got)
		}
	}
}

func TestReportsRejectBadFlags(t *testing.T) {
	useTempConfig(t)
	tests := []struct {
		c    subcommands.Command
		args []string
	}{
		{&allocationCmd{}, []string{"-by", "country"}},
		{&allocationCmd{}, []string{"-sort", "size"}},
		{&analysisCmd{}, []string{"-p", "weekly"}},
		{&summaryCmd{}, []string{"-d", "someday"}},
		{&txCmd{}, []string{"-head", "1", "-tail", "1"}},
	}
	for _, tt := range tests {
		if got := run(t, tt.c, tt.args...); got != subcommands.ExitUsageError {
			t.Errorf("%s %v = %v, want ExitUsageError", tt.c.Name(), tt.args, got)
		}
	}
}

func TestCompletionCoversCommands(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("pft", flag.ContinueOnError), "pft")
	Register(commander)

	sub := Completion().Sub
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if _, ok := sub[c.Name()]; !ok {
			t.Errorf("command %q has no completion", c.Name())
		}
	})
}

func TestFormatLedger(t *testing.T) {
	cfg := useTempConfig(t)
	content := `{"id":"b","command":"sell","date":"2024-02-01","symbol":"acme","quantity":1,"price":12}
{"id":"a","command":"buy","date":"2024-01-01","symbol":"acme","quantity":2,"price":10,"currency":"inr"}
`
	expected := `{"id":"a","command":"buy","date":"2024-01-01","symbol":"ACME","quantity":2,"price":10,"currency":"INR"}
{"id":"b","command":"sell","date":"2024-02-01","symbol":"ACME","quantity":1,"price":12}
`
	if err := os.WriteFile(cfg.Files.Ledger, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if got := run(t, &fmtCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("fmt = %v, want ExitSuccess", got)
	}
	data, err := os.ReadFile(cfg.Files.Ledger)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != expected {
		t.Errorf("formatted ledger =\n%s\nwant\n%s", data, expected)
	}
}

func TestDecodeLedger_PersistsAssignedIDs(t *testing.T) {
	cfg := useTempConfig(t)
	content := `{"command":"buy","date":"2024-01-01","symbol":"ACME","quantity":2,"price":10}
`
	if err := os.WriteFile(cfg.Files.Ledger, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	first := readLedger(t, cfg)
	second := readLedger(t, cfg)
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("got %d and %d transactions, want 1", len(first), len(second))
	}
	id := first[0].ID
	if id == "" || second[0].ID != id {
		t.Fatalf("ids = %q then %q, want the same non-empty id", id, second[0].ID)
	}
	data, err := os.ReadFile(cfg.Files.Ledger)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"id":"`+id+`"`) {
		t.Errorf("ledger file = %q, want it to record id %q", data, id)
	}

	if got := run(t, &editCmd{}, "-q", "3", id); got != subcommands.ExitSuccess {
		t.Fatalf("edit %s = %v, want ExitSuccess", id, got)
	}
	if got := readLedger(t, cfg)[0].Quantity; !got.Equal(folio.Q(3)) {
		t.Errorf("quantity = %v, want 3", got)
	}
}
