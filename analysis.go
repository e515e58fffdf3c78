package folio

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// monthsPerYear is the fixed divisor of a year's average monthly investment,
// whatever the number of months with activity: it is the monthly pace the
// year's investment represents over a full year.
const monthsPerYear = 12

// Share is a named part of a total.
type Share struct {
	Name    string
	Value   Money
	Percent Percent // Value / total
}

// PeriodInvestment is the capital invested during one calendar period.
type PeriodInvestment struct {
	Period Period
	Key    string // "2006" or "2006-01"
	Buys   int    // number of buy transactions in the period
	// Invested is the Σ quantity × price of the buys of the period. Sells are
	// not counted: only new capital is measured.
	Invested Money
	// AverageMonthly is Invested / 12 for a year, Invested for a month.
	AverageMonthly Money
	// Change is the change of AverageMonthly relative to the previous period
	// with activity; 0 for the oldest period or when the previous is zero.
	Change Percent
	// Distribution breaks the year's investment down by a dimension. It is
	// only computed for yearly periods.
	Distribution []Share
}

// NewAnalysis groups the buy transactions of txs by calendar period and
// returns one PeriodInvestment per period with activity, newest first.
//
// Yearly periods also carry the distribution of their investment along dim,
// resolved from the quotes (or from the transaction for ByBroker), missing
// values being grouped under Other.
func NewAnalysis(txs []Transaction, quotes *Quotes, cur string, period Period, dim Dimension) []PeriodInvestment {
	index := make(map[string]int)
	var periods []PeriodInvestment
	dist := make(map[string]map[string]Money) // period key -> dimension value -> invested

	for _, tx := range sortedByDate(txs) {
		if !tx.IsBuy() {
			continue
		}
		key := period.Key(tx.Date)
		i, ok := index[key]
		if !ok {
			i = len(periods)
			index[key] = i
			periods = append(periods, PeriodInvestment{Period: period, Key: key, Invested: M(0, cur)})
			dist[key] = make(map[string]Money)
		}
		amount := tx.Amount(cur)
		periods[i].Buys++
		periods[i].Invested = periods[i].Invested.Add(amount)

		if period == Yearly {
			name := distributionName(tx, quotes, dim)
			if v, ok := dist[key][name]; ok {
				dist[key][name] = v.Add(amount)
			} else {
				dist[key][name] = amount
			}
		}
	}

	// newest first; keys sort chronologically.
	slices.SortFunc(periods, func(a, b PeriodInvestment) int { return strings.Compare(b.Key, a.Key) })

	for i := range periods {
		p := &periods[i]
		p.AverageMonthly = p.Invested
		if period == Yearly {
			p.AverageMonthly = M(p.Invested.Decimal().Div(decimal.NewFromInt(monthsPerYear)), cur)
			p.Distribution = shares(dist[p.Key], p.Invested)
		}
	}
	for i := 0; i+1 < len(periods); i++ {
		this, prev := periods[i].AverageMonthly, periods[i+1].AverageMonthly
		periods[i].Change = this.Sub(prev).Ratio(prev)
	}
	return periods
}

func distributionName(tx Transaction, quotes *Quotes, dim Dimension) string {
	if dim == ByBroker {
		return orOther(tx.Broker)
	}
	t, _ := quotes.Get(tx.Symbol)
	return dim.of(Holding{Name: t.Name, Sector: t.Sector, AssetType: t.AssetType})
}

// shares converts named values into shares of total, sorted by decreasing
// value then by name.
func shares(values map[string]Money, total Money) []Share {
	res := make([]Share, 0, len(values))
	for name, v := range values {
		res = append(res, Share{Name: name, Value: v, Percent: v.Ratio(total)})
	}
	slices.SortFunc(res, func(a, b Share) int {
		if c := b.Value.Decimal().Cmp(a.Value.Decimal()); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return res
}
