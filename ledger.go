package folio

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no transaction has the requested id.
var ErrNotFound = errors.New("transaction not found")

// Ledger represents the list of transactions of a portfolio.
//
// The ledger keeps transactions in insertion order; Transactions returns them
// in chronological order, transactions on the same date keeping their
// insertion order.
type Ledger struct {
	transactions []Transaction
	assigned     int // ids generated by NewLedger and Add
}

// NewLedger creates an ledger holding txs. Transactions without an id are
// given one.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: make([]Transaction, 0, len(txs))}
	for _, tx := range txs {
		if tx.ID == "" {
			tx.ID = uuid.NewString()
			l.assigned++
		}
		l.transactions = append(l.transactions, tx.normalize())
	}
	return l
}

// AssignedIDs returns how many transactions were given a generated id since
// the ledger was created. A decoded ledger with assigned ids differs from its
// file until it is saved.
func (l *Ledger) AssignedIDs() int { return l.assigned }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Add validates tx, assigns it a fresh id if it has none, and appends it to
// the ledger. It returns the recorded transaction.
func (l *Ledger) Add(tx Transaction) (Transaction, error) {
	tx = tx.normalize()
	if err := tx.Validate(); err != nil {
		return tx, err
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
		l.assigned++
	} else if l.index(tx.ID) >= 0 {
		return tx, fmt.Errorf("%w: duplicate id %q", ErrInvalidTransaction, tx.ID)
	}
	l.transactions = append(l.transactions, tx)
	return tx, nil
}

// Update replaces the transaction with the same id.
func (l *Ledger) Update(tx Transaction) error {
	i := l.index(tx.ID)
	if i < 0 {
		return fmt.Errorf("cannot update %q: %w", tx.ID, ErrNotFound)
	}
	tx = tx.normalize()
	if err := tx.Validate(); err != nil {
		return err
	}
	l.transactions[i] = tx
	return nil
}

// Remove deletes the transaction with the given id.
func (l *Ledger) Remove(id string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("cannot remove %q: %w", id, ErrNotFound)
	}
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return nil
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id string) (Transaction, bool) {
	i := l.index(id)
	if i < 0 {
		return Transaction{}, false
	}
	return l.transactions[i], true
}

func (l *Ledger) index(id string) int {
	return slices.IndexFunc(l.transactions, func(tx Transaction) bool { return tx.ID == id })
}

// Transactions returns a copy of the transactions sorted by date. The sort is
// stable: transactions on the same date keep their insertion order.
func (l *Ledger) Transactions() []Transaction {
	return sortedByDate(l.transactions)
}

// Symbols returns an iterator over the distinct symbols of the ledger, in
// order of first appearance.
func (l *Ledger) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, tx := range l.transactions {
			if _, ok := seen[tx.Symbol]; ok {
				continue
			}
			seen[tx.Symbol] = struct{}{}
			if !yield(tx.Symbol) {
				return
			}
		}
	}
}

// sortedByDate returns a chronologically sorted copy of txs.
func sortedByDate(txs []Transaction) []Transaction {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})
	return sorted
}
