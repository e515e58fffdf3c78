package folio

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Rhymond/go-money"
)

var currencyRE = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if !currencyRE.MatchString(code) {
		return fmt.Errorf("invalid currency code %q: must be 3 uppercase letters", code)
	}
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

// Portfolio bundles everything the calculations need: the ledger, the
// quotes snapshot and the reporting currency.
//
// A Portfolio holds no derived state. Every method recomputes its result
// from the current ledger and quotes, so a Portfolio can be shared freely as
// long as its ledger is not mutated concurrently.
type Portfolio struct {
	Ledger            *Ledger
	Quotes            *Quotes
	ReportingCurrency string
}

// NewPortfolio creates a portfolio over ledger and quotes.
func NewPortfolio(ledger *Ledger, quotes *Quotes, reportingCurrency string) (*Portfolio, error) {
	if err := ValidateCurrency(reportingCurrency); err != nil {
		return nil, fmt.Errorf("invalid reporting currency: %w", err)
	}
	if ledger == nil {
		ledger = NewLedger()
	}
	if quotes == nil {
		quotes = NewQuotes()
	}
	return &Portfolio{Ledger: ledger, Quotes: quotes, ReportingCurrency: reportingCurrency}, nil
}

// Holdings returns the open positions. See NewHoldings.
func (p *Portfolio) Holdings() []Holding {
	return NewHoldings(p.Ledger.Transactions(), p.Quotes, p.ReportingCurrency)
}

// Summary returns the portfolio totals as of now. See NewSummary.
func (p *Portfolio) Summary(now time.Time) Summary {
	return NewSummary(p.Ledger.Transactions(), p.Quotes, p.ReportingCurrency, now)
}

// Allocation returns the holdings grouped by dim. See NewAllocation.
func (p *Portfolio) Allocation(dim Dimension) Allocation {
	return NewAllocation(p.Holdings(), dim, p.ReportingCurrency)
}

// Analysis returns the investment per period. See NewAnalysis.
func (p *Portfolio) Analysis(period Period, dim Dimension) []PeriodInvestment {
	return NewAnalysis(p.Ledger.Transactions(), p.Quotes, p.ReportingCurrency, period, dim)
}

// Health scores the portfolio as of now. See NewHealth.
func (p *Portfolio) Health(now time.Time) Health {
	return NewHealth(p.Holdings(), p.Summary(now))
}

// Insights returns the notable holdings. See NewInsights.
func (p *Portfolio) Insights() Insights {
	return NewInsights(p.Holdings())
}

// Projection projects the current value with a monthly contribution over
// years, at the portfolio XIRR (as of now) or the fallback return when the
// XIRR is not positive. Inflation and fallback rates come from a, its
// AnnualReturn is replaced by the XIRR.
func (p *Portfolio) Projection(now time.Time, monthly Money, years int, a Assumptions) Projection {
	s := p.Summary(now)
	a.AnnualReturn = float64(s.XIRR) / 100
	return NewProjection(s.TotalValue, monthly, years, a)
}
