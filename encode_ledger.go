package folio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// formatDate writes day dates as "2006-01-02" and other timestamps in RFC3339.
func formatDate(t time.Time) string {
	if t.Equal(dayOf(t)) {
		return t.Format(DateFormat)
	}
	return t.Format(time.RFC3339)
}

// jsonTransaction is the persisted form of a Transaction. Its field order is
// the order of the JSON line.
type jsonTransaction struct {
	ID       string          `json:"id"`
	Command  string          `json:"command"`
	Date     string          `json:"date"`
	Symbol   string          `json:"symbol"`
	Quantity Quantity        `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency,omitempty"`
	Broker   string          `json:"broker,omitempty"`
}

// MarshalJSON writes the transaction with a stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonTransaction{
		ID:       t.ID,
		Command:  string(t.Command),
		Date:     formatDate(t.Date),
		Symbol:   t.Symbol,
		Quantity: t.Quantity,
		Price:    t.Price,
		Currency: t.Currency,
		Broker:   t.Broker,
	})
}

// UnmarshalJSON reads a transaction written by MarshalJSON. The command is
// case-insensitive.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp jsonTransaction
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	cmd, err := ParseCommandType(temp.Command)
	if err != nil {
		return err
	}
	if temp.Date == "" {
		return fmt.Errorf("%w: date is missing", ErrInvalidTransaction)
	}
	on, err := ParseDate(temp.Date)
	if err != nil {
		return err
	}
	*t = Transaction{
		ID:       temp.ID,
		Command:  cmd,
		Date:     on,
		Symbol:   temp.Symbol,
		Quantity: temp.Quantity,
		Price:    temp.Price,
		Currency: temp.Currency,
		Broker:   temp.Broker,
	}
	return nil
}

// DecodeLedger decodes transactions from a stream of JSONL data, one
// transaction per line, and returns the Ledger holding them in stream order.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var tx Transaction
		if err := json.Unmarshal(lineBytes, &tx); err != nil {
			return nil, fmt.Errorf("line %d: could not decode transaction %q: %w", line, string(lineBytes), err)
		}
		if _, err := ledger.Add(tx); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeLedger writes the ledger transactions in chronological order, one JSON
// object per line.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, tx := range ledger.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// EncodeTransaction writes a single transaction as a JSON line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	b, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not encode transaction %s: %w", tx.ID, err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
