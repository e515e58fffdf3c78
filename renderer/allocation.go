package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// AllocationMarkdown renders the allocation buckets in the given order.
func AllocationMarkdown(a folio.Allocation, order folio.BucketOrder, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Allocation by %s", a.Dimension))
	if a.IsEmpty {
		doc.PlainText("No holdings to allocate.")
		return doc.String()
	}

	buckets := a.Sorted(order)
	rows := make([][]string, 0, len(buckets)+1)
	for _, b := range buckets {
		name := cell(b.Name)
		if b.Symbol != "" && b.Symbol != b.Name {
			name += " (" + b.Symbol + ")"
		}
		rows = append(rows, []string{
			name,
			opts.Money(b.Value),
			opts.Money(b.Invested),
			opts.SignedMoney(b.PnL),
			b.PnLPercent.SignedString(),
			b.Percent.String(),
		})
	}
	rows = append(rows, []string{md.Bold("Total"), md.Bold(opts.Money(a.Total)), "", "", "", "100.00%"})
	doc.Table(md.TableSet{
		Alignment: alignment("lrrrrr"),
		Header:    []string{title(a.Dimension.String()), "Value", "Invested", "P&L", "P&L %", "Weight"},
		Rows:      rows,
	})
	return doc.String()
}
