// Package folio provides the calculation core of a personal investment
// tracker. It turns a ledger of buy and sell transactions and a table of
// live ticker quotes into portfolio valuation, return metrics, and
// allocation and grading analytics.
//
// The core functionalities include:
//   - Ledger Management: Recording, editing and removing buy and sell
//     transactions, and persisting them as JSONL.
//   - Quotes: A read-only snapshot of the latest price, previous close and
//     descriptive fields (sector, asset type, company) of each instrument.
//   - Holdings: Per-instrument position, net invested capital, market value
//     and profit and loss.
//   - Summary: Portfolio totals and the money-weighted annualized return
//     (XIRR) computed with a Newton-Raphson solver.
//   - Allocation: Holdings grouped by sector, company, asset type or broker.
//   - Analysis: Yearly and monthly investment totals and their growth.
//   - Health: A 0-100 graded score of concentration, diversification,
//     profitability and XIRR.
//   - Projection: Compounded future value of the portfolio and a recurring
//     monthly contribution, in nominal and inflation-adjusted terms.
//
// Every computation is a pure function of the ledger and the quotes given at
// call time. Nothing is cached, so there is nothing to invalidate when the
// ledger or the quotes change: callers simply recompute.
package folio
