package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders the future value forecast.
func ProjectionMarkdown(p folio.Projection, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Projection over %d years", p.Years))

	rate := folio.Percent(100 * p.AnnualReturn).String()
	if p.UsedFallback {
		rate += " (fallback)"
	}
	multiplier := "-"
	if p.Multiplier > 0 {
		multiplier = fmt.Sprintf("%.2fx", p.Multiplier)
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Annual Return", rate},
			{"Inflation", folio.Percent(100 * p.Inflation).String()},
			{"Current Value", opts.Money(p.Current)},
			{"Monthly Contribution", opts.Money(p.Monthly)},
			{"Total Invested", opts.Money(p.Invested)},
			{"Future Value", md.Bold(opts.Money(p.FutureValue))},
			{"Gains", opts.SignedMoney(p.Gains)},
			{"Multiplier", multiplier},
			{"Today's Value", opts.Money(p.PresentValue)},
		},
	})
	return doc.String()
}
