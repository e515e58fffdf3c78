package folio

import (
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Ticker is the latest quote snapshot of an instrument.
//
// Optional prices are pointers: a nil PreviousClose means the previous close
// is unknown, which is not the same as a previous close of zero.
type Ticker struct {
	Symbol        string
	Price         decimal.Decimal  // current price
	PreviousClose *decimal.Decimal // optional
	High52        *decimal.Decimal // optional 52-week high
	Low52         *decimal.Decimal // optional 52-week low
	Name          string           // company name
	Sector        string
	AssetType     string
	Logo          string // optional logo reference
}

// Quotes is a read-only table of tickers indexed by upper-cased symbol.
//
// The calculation core never mutates the quotes it is given.
type Quotes struct {
	index map[string]Ticker
}

// NewQuotes returns a quotes table holding tickers.
func NewQuotes(tickers ...Ticker) *Quotes {
	q := &Quotes{index: make(map[string]Ticker, len(tickers))}
	for _, t := range tickers {
		q.Set(t)
	}
	return q
}

func normalizeSymbol(symbol string) string { return strings.ToUpper(strings.TrimSpace(symbol)) }

// Set adds or replaces the ticker for its symbol.
func (q *Quotes) Set(t Ticker) {
	t.Symbol = normalizeSymbol(t.Symbol)
	q.index[t.Symbol] = t
}

// Get returns the ticker for symbol, matched case-insensitively.
// A nil Quotes holds no ticker.
func (q *Quotes) Get(symbol string) (Ticker, bool) {
	if q == nil {
		return Ticker{}, false
	}
	t, ok := q.index[normalizeSymbol(symbol)]
	return t, ok
}

// Has reports whether the table holds a ticker for symbol.
func (q *Quotes) Has(symbol string) bool {
	_, ok := q.Get(symbol)
	return ok
}

// Len returns the number of tickers.
func (q *Quotes) Len() int {
	if q == nil {
		return 0
	}
	return len(q.index)
}

// Symbols returns the sorted list of symbols.
func (q *Quotes) Symbols() []string {
	if q == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(q.index))
}

// Clone returns an independent copy of the table.
func (q *Quotes) Clone() *Quotes {
	if q == nil {
		return NewQuotes()
	}
	return &Quotes{index: maps.Clone(q.index)}
}
