package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the portfolio summary.
func SummaryMarkdown(s folio.Summary, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.Date.Format(folio.DateFormat)))
	doc.PlainText(fmt.Sprintf("Total Value: %s", md.Bold(opts.Money(s.TotalValue))))

	doc.H2("Performance")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Net Invested", opts.Money(s.TotalCost)},
			{"Profit", opts.SignedMoney(s.Profit)},
			{"Profit %", s.ProfitPercent.SignedString()},
			{"XIRR", s.XIRR.SignedString()},
		},
	})
	return doc.String()
}
