package folio

import "time"

// Summary provides an at-a-glance overview of the portfolio's value and
// performance.
type Summary struct {
	Date              time.Time // Date of the valuation, the terminal cash flow date.
	ReportingCurrency string
	TotalValue        Money   // Σ buy qty × current price − Σ sell qty × sell price
	TotalCost         Money   // net capital invested: Σ buy amounts − Σ sell amounts
	Profit            Money   // TotalValue − TotalCost
	ProfitPercent     Percent // Profit / TotalCost, 0 when TotalCost <= 0
	XIRR              Percent // money-weighted annualized return
}

// NewSummary computes the portfolio totals of txs valued with quotes in the
// reporting currency cur, as of now.
//
// A single chronological pass accumulates the totals and the XIRR cash
// flows: a buy adds its amount to the cost, its value at the current price
// (or its own price when unquoted) to the total value, and is an outflow; a
// sell removes its amount from both totals and is an inflow. A last
// synthetic inflow of the total value, dated now, stands for liquidating the
// portfolio today. It is only used by the XIRR.
func NewSummary(txs []Transaction, quotes *Quotes, cur string, now time.Time) Summary {
	s := Summary{
		Date:              now,
		ReportingCurrency: cur,
		TotalValue:        M(0, cur),
		TotalCost:         M(0, cur),
	}

	sorted := sortedByDate(txs)
	flows := make([]CashFlow, 0, len(sorted)+1)
	for _, tx := range sorted {
		amount := tx.Amount(cur)
		switch tx.Command {
		case CmdBuy:
			price := M(tx.Price, cur)
			if t, ok := quotes.Get(tx.Symbol); ok {
				price = M(t.Price, cur)
			}
			s.TotalCost = s.TotalCost.Add(amount)
			s.TotalValue = s.TotalValue.Add(price.Mul(tx.Quantity))
			flows = append(flows, CashFlow{Date: tx.Date, Amount: -amount.AsFloat()})
		case CmdSell:
			s.TotalCost = s.TotalCost.Sub(amount)
			s.TotalValue = s.TotalValue.Sub(amount)
			flows = append(flows, CashFlow{Date: tx.Date, Amount: amount.AsFloat()})
		}
	}
	flows = append(flows, CashFlow{Date: now, Amount: s.TotalValue.AsFloat()})

	s.Profit = s.TotalValue.Sub(s.TotalCost)
	s.ProfitPercent = s.Profit.Ratio(s.TotalCost)
	s.XIRR = XIRR(flows)
	return s
}
