package renderer

import (
	"bytes"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the holdings table.
func HoldingsMarkdown(holdings []folio.Holding, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")
	if len(holdings) == 0 {
		doc.PlainText("No open position.")
		return doc.String()
	}

	rows := make([][]string, 0, len(holdings))
	unquoted := false
	for _, h := range holdings {
		symbol := h.Symbol
		if !h.Quoted {
			symbol += `\*`
			unquoted = true
		}
		rows = append(rows, []string{
			symbol,
			cell(h.Name),
			h.Quantity.String(),
			opts.Money(h.AvgPrice),
			opts.Money(h.Price),
			opts.Money(h.Value),
			opts.SignedMoney(h.PnL),
			h.PnLPercent.SignedString(),
			h.DayChangePercent.SignedString(),
			h.Contribution.String(),
		})
	}
	doc.CustomTable(md.TableSet{
		Alignment: alignment("llrrrrrrrr"),
		Header:    []string{"Symbol", "Name", "Quantity", "Avg. Price", "Price", "Value", "P&L", "P&L %", "Day", "Weight"},
		Rows:      rows,
	}, md.TableOptions{AutoWrapText: false})
	if unquoted {
		doc.PlainText(`\* no quote, valued at the last transaction price.`)
	}
	return doc.String()
}

// HoldingMarkdown renders the detail of one holding.
func HoldingMarkdown(h folio.Holding, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	heading := h.Symbol
	if h.Name != "" {
		heading += " - " + h.Name
	}
	doc.H1(heading)

	rows := [][]string{
		{"Sector", cell(h.Sector)},
		{"Asset Type", cell(h.AssetType)},
		{"Broker", cell(h.Broker)},
		{"Quantity", h.Quantity.String()},
		{"Invested", opts.Money(h.Invested)},
		{"Avg. Price", opts.Money(h.AvgPrice)},
		{"Price", opts.Money(h.Price)},
		{"Value", opts.Money(h.Value)},
		{"P&L", opts.SignedMoney(h.PnL) + " (" + h.PnLPercent.SignedString() + ")"},
		{"Day Change", opts.SignedMoney(h.DayChange) + " (" + h.DayChangePercent.SignedString() + ")"},
		{"Weight", h.Contribution.String()},
	}
	if pos, ok := h.RangePosition(); ok {
		rows = append(rows, []string{"52-Week Range", pos.String()})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows:      rows,
	})
	return doc.String()
}
