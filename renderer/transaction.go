package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction to a string.
func Transaction(tx folio.Transaction, opts Options) string {
	price := price(tx, opts)
	switch tx.Command {
	case folio.CmdBuy:
		return fmt.Sprintf("Bought %s of %s at %s", tx.Quantity, tx.Symbol, price)
	case folio.CmdSell:
		return fmt.Sprintf("Sold %s of %s at %s", tx.Quantity, tx.Symbol, price)
	default:
		return string(tx.Command)
	}
}

// TransactionsMarkdown renders the ledger, in the given order.
func TransactionsMarkdown(txs []folio.Transaction, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transaction.")
		return doc.String()
	}
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.Date.Format(folio.DateFormat),
			string(tx.Command),
			tx.Symbol,
			tx.Quantity.String(),
			price(tx, opts),
			cell(tx.Broker),
			md.Code(tx.ID),
		})
	}
	doc.CustomTable(md.TableSet{
		Alignment: alignment("lllrrll"),
		Header:    []string{"Date", "Type", "Symbol", "Quantity", "Price", "Broker", "ID"},
		Rows:      rows,
	}, md.TableOptions{AutoWrapText: false})
	return doc.String()
}

// price formats the unit price in the informational currency of tx.
func price(tx folio.Transaction, opts Options) string {
	if opts.Privacy {
		return masked
	}
	s := tx.Price.StringFixed(2)
	if tx.Currency != "" {
		s += " " + tx.Currency
	}
	return s
}
