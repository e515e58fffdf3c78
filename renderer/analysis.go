package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// AnalysisMarkdown renders the investment per period, newest first, and the
// distribution of each year when present.
func AnalysisMarkdown(periods []folio.PeriodInvestment, period folio.Period, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Investment", title(period.String())))
	if len(periods) == 0 {
		doc.PlainText("No buy transaction.")
		return doc.String()
	}

	rows := make([][]string, 0, len(periods))
	for _, p := range periods {
		rows = append(rows, []string{
			p.Key,
			opts.Money(p.Invested),
			opts.Money(p.AverageMonthly),
			p.Change.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Alignment: alignment("lrrr"),
		Header:    []string{title(period.Name()), "Invested", "Monthly Avg.", "Change"},
		Rows:      rows,
	})

	for _, p := range periods {
		if len(p.Distribution) == 0 {
			continue
		}
		doc.H2(p.Key)
		rows := make([][]string, 0, len(p.Distribution))
		for _, s := range p.Distribution {
			rows = append(rows, []string{cell(s.Name), opts.Money(s.Value), s.Percent.String()})
		}
		doc.Table(md.TableSet{
			Alignment: alignment("lrr"),
			Header:    []string{"Name", "Invested", "Share"},
			Rows:      rows,
		})
	}
	return doc.String()
}
