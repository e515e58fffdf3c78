package folio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// jsonTicker is the persisted form of a Ticker.
type jsonTicker struct {
	Symbol        string           `json:"symbol"`
	Price         decimal.Decimal  `json:"price"`
	PreviousClose *decimal.Decimal `json:"previousClose,omitempty"`
	High52        *decimal.Decimal `json:"high52,omitempty"`
	Low52         *decimal.Decimal `json:"low52,omitempty"`
	Name          string           `json:"name,omitempty"`
	Sector        string           `json:"sector,omitempty"`
	AssetType     string           `json:"assetType,omitempty"`
	Logo          string           `json:"logo,omitempty"`
}

// DecodeQuotes reads a JSON array of tickers.
func DecodeQuotes(r io.Reader) (*Quotes, error) {
	var tickers []jsonTicker
	if err := json.NewDecoder(r).Decode(&tickers); err != nil {
		return nil, fmt.Errorf("could not decode quotes: %w", err)
	}
	q := NewQuotes()
	for _, t := range tickers {
		q.Set(Ticker(t))
	}
	return q, nil
}

// EncodeQuotes writes the quotes as an indented JSON array sorted by symbol.
func EncodeQuotes(w io.Writer, q *Quotes) error {
	tickers := make([]jsonTicker, 0, q.Len())
	for _, symbol := range q.Symbols() {
		t, _ := q.Get(symbol)
		tickers = append(tickers, jsonTicker(t))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tickers); err != nil {
		return fmt.Errorf("could not encode quotes: %w", err)
	}
	return nil
}
