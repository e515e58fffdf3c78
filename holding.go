package folio

import (
	"slices"
	"strings"
)

// Holding is the current aggregate position in one instrument, derived from
// its transactions and its ticker.
//
// Invested is the net capital invested: the cost of every buy minus the
// proceeds of every sell, both valued at the transaction price. This is not
// lot accounting: a sale reduces the invested capital by what it returned,
// not by the cost of the units sold.
type Holding struct {
	Symbol    string
	Name      string // company name, from the ticker
	Sector    string
	AssetType string
	Logo      string
	Broker    string // broker label of the latest transaction that has one

	Quantity      Quantity // net quantity, always positive
	Invested      Money    // net capital invested
	AvgPrice      Money    // Invested / Quantity
	Price         Money    // current price, or the last transaction price when unquoted
	PreviousClose Money    // previous close, or Price when unknown or zero
	Quoted        bool     // true when a ticker was found for the symbol

	Value            Money   // Quantity × Price
	PnL              Money   // Value - Invested
	PnLPercent       Percent // PnL / Invested, 0 when Invested <= 0
	DayChange        Money   // Quantity × (Price - PreviousClose)
	DayChangePercent Percent // DayChange / (Quantity × PreviousClose)
	Contribution     Percent // Value / total value of all holdings

	high52, low52 *Money
}

// RangePosition returns where the current price lies within the 52-week
// range, 0% at the low and 100% at the high. It reports false when either
// bound is unknown or the range is empty.
func (h Holding) RangePosition() (Percent, bool) {
	if h.high52 == nil || h.low52 == nil {
		return 0, false
	}
	width := h.high52.Sub(*h.low52)
	if !width.IsPositive() {
		return 0, false
	}
	return h.Price.Sub(*h.low52).Ratio(width), true
}

// position accumulates the transactions of one symbol.
type position struct {
	symbol    string
	quantity  Quantity
	invested  Money
	lastPrice Money
	broker    string
}

func (p *position) apply(tx Transaction, cur string) {
	amount := tx.Amount(cur)
	switch tx.Command {
	case CmdBuy:
		p.quantity = p.quantity.Add(tx.Quantity)
		p.invested = p.invested.Add(amount)
	case CmdSell:
		p.quantity = p.quantity.Sub(tx.Quantity)
		p.invested = p.invested.Sub(amount)
	}
	p.lastPrice = M(tx.Price, cur)
	if tx.Broker != "" {
		p.broker = tx.Broker
	}
}

// NewHoldings computes one Holding per symbol of txs, in the reporting
// currency cur, valued with quotes.
//
// Transactions are processed in chronological order (stable for equal
// dates). Symbols whose net quantity is zero or negative (exited positions)
// are excluded: they are not part of any holdings-based result (allocation,
// health, insights). Symbols without a ticker are valued at their last
// transaction price, so their P&L is flat.
//
// Holdings are returned sorted by symbol.
func NewHoldings(txs []Transaction, quotes *Quotes, cur string) []Holding {
	positions := make(map[string]*position)
	for _, tx := range sortedByDate(txs) {
		symbol := normalizeSymbol(tx.Symbol)
		p, ok := positions[symbol]
		if !ok {
			p = &position{symbol: symbol, quantity: Q(0), invested: M(0, cur)}
			positions[symbol] = p
		}
		p.apply(tx, cur)
	}

	holdings := make([]Holding, 0, len(positions))
	for _, p := range positions {
		if !p.quantity.IsPositive() {
			continue
		}
		holdings = append(holdings, newHolding(p, quotes, cur))
	}
	slices.SortFunc(holdings, func(a, b Holding) int { return strings.Compare(a.Symbol, b.Symbol) })

	total := M(0, cur)
	for _, h := range holdings {
		total = total.Add(h.Value)
	}
	for i := range holdings {
		holdings[i].Contribution = holdings[i].Value.Ratio(total)
	}
	return holdings
}

func newHolding(p *position, quotes *Quotes, cur string) Holding {
	h := Holding{
		Symbol:   p.symbol,
		Broker:   p.broker,
		Quantity: p.quantity,
		Invested: p.invested,
		AvgPrice: p.invested.Div(p.quantity),
		Price:    p.lastPrice,
	}
	if t, ok := quotes.Get(p.symbol); ok {
		h.Quoted = true
		h.Name, h.Sector, h.AssetType, h.Logo = t.Name, t.Sector, t.AssetType, t.Logo
		h.Price = M(t.Price, cur)
		h.PreviousClose = h.Price
		if t.PreviousClose != nil && !t.PreviousClose.IsZero() {
			h.PreviousClose = M(*t.PreviousClose, cur)
		}
		if t.High52 != nil {
			high := M(*t.High52, cur)
			h.high52 = &high
		}
		if t.Low52 != nil {
			low := M(*t.Low52, cur)
			h.low52 = &low
		}
	} else {
		h.PreviousClose = h.Price
	}

	h.Value = h.Price.Mul(h.Quantity)
	h.PnL = h.Value.Sub(h.Invested)
	h.PnLPercent = h.PnL.Ratio(h.Invested)
	h.DayChange = h.Price.Sub(h.PreviousClose).Mul(h.Quantity)
	h.DayChangePercent = h.DayChange.Ratio(h.PreviousClose.Mul(h.Quantity))
	return h
}
