package folio

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CommandType identifies the kind of a transaction.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdBuy  CommandType = "buy"
	CmdSell CommandType = "sell"
)

// ParseCommandType parses a case-insensitive transaction type ("BUY", "sell").
func ParseCommandType(s string) (CommandType, error) {
	switch CommandType(strings.ToLower(strings.TrimSpace(s))) {
	case CmdBuy:
		return CmdBuy, nil
	case CmdSell:
		return CmdSell, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction type %q", ErrInvalidTransaction, s)
	}
}

// ErrInvalidTransaction is returned when a transaction fails validation.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Transaction is a single buy or sell of an instrument.
//
// Transactions are immutable once recorded; the Ledger replaces them as a
// whole on edit.
type Transaction struct {
	ID       string          // ID is assigned by the Ledger and never reused.
	Command  CommandType     // Command is either CmdBuy or CmdSell.
	Date     time.Time       // Date of execution.
	Symbol   string          // Symbol of the instrument, upper case.
	Quantity Quantity        // Quantity is the positive number of units traded.
	Price    decimal.Decimal // Price per unit, in Currency.
	Currency string          // Currency is informational, no conversion is performed.
	Broker   string          // Broker is a free-text label, may be empty.
}

// NewBuy creates a buy transaction.
func NewBuy(on time.Time, symbol string, quantity, price float64) Transaction {
	return Transaction{Command: CmdBuy, Date: on, Symbol: symbol, Quantity: Q(quantity), Price: decimal.NewFromFloat(price)}
}

// NewSell creates a sell transaction.
func NewSell(on time.Time, symbol string, quantity, price float64) Transaction {
	return Transaction{Command: CmdSell, Date: on, Symbol: symbol, Quantity: Q(quantity), Price: decimal.NewFromFloat(price)}
}

// WithBroker returns a copy of the transaction with the broker label set.
func (t Transaction) WithBroker(broker string) Transaction {
	t.Broker = broker
	return t
}

// WithCurrency returns a copy of the transaction with the currency set.
func (t Transaction) WithCurrency(cur string) Transaction {
	t.Currency = cur
	return t
}

// IsBuy reports whether this is a buy transaction.
func (t Transaction) IsBuy() bool { return t.Command == CmdBuy }

// Amount returns quantity × price expressed in the reporting currency cur.
func (t Transaction) Amount(cur string) Money {
	return M(t.Price, cur).Mul(t.Quantity)
}

// Equal reports whether both transactions hold the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Command == o.Command &&
		t.Date.Equal(o.Date) &&
		t.Symbol == o.Symbol &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Currency == o.Currency &&
		t.Broker == o.Broker
}

// normalize returns a copy with the symbol upper-cased and labels trimmed.
func (t Transaction) normalize() Transaction {
	t.Symbol = strings.ToUpper(strings.TrimSpace(t.Symbol))
	t.Currency = strings.ToUpper(strings.TrimSpace(t.Currency))
	t.Broker = strings.TrimSpace(t.Broker)
	return t
}

// Validate checks the transaction fields.
func (t Transaction) Validate() error {
	var errs []error
	if t.Command != CmdBuy && t.Command != CmdSell {
		errs = append(errs, fmt.Errorf("unknown transaction type %q", t.Command))
	}
	if strings.TrimSpace(t.Symbol) == "" {
		errs = append(errs, errors.New("symbol is missing"))
	}
	if !t.Quantity.IsPositive() {
		errs = append(errs, fmt.Errorf("quantity must be positive, got %s", t.Quantity))
	}
	if !t.Price.IsPositive() {
		errs = append(errs, fmt.Errorf("price must be positive, got %s", t.Price))
	}
	if t.Date.IsZero() {
		errs = append(errs, errors.New("date is missing"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidTransaction, errors.Join(errs...))
	}
	return nil
}
