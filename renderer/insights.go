package renderer

import (
	"bytes"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// InsightsMarkdown renders the notable holdings.
func InsightsMarkdown(i folio.Insights, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Insights")
	if i.IsEmpty {
		doc.PlainText("No holdings.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Alignment: alignment("llrr"),
		Header:    []string{"", "Symbol", "P&L", "Change"},
		Rows: [][]string{
			{"Top Gainer", i.TopGainer.Symbol, opts.SignedMoney(i.TopGainer.PnL), i.TopGainer.PnLPercent.SignedString()},
			{"Top Loser", i.TopLoser.Symbol, opts.SignedMoney(i.TopLoser.PnL), i.TopLoser.PnLPercent.SignedString()},
			{"Biggest Move", i.BiggestMove.Symbol, opts.SignedMoney(i.BiggestMove.DayChange), i.BiggestMove.DayChangePercent.SignedString()},
		},
	})
	return doc.String()
}
