package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// HealthMarkdown renders the health score and its dimensions.
func HealthMarkdown(h folio.Health, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Health")
	if h.IsEmpty {
		doc.PlainText("No holdings to score.")
		return doc.String()
	}
	doc.PlainText(md.Bold(fmt.Sprintf("Score: %d/100 (%s)", h.Score, h.Grade)))

	rows := make([][]string, 0, len(h.Dimensions))
	for _, d := range h.Dimensions {
		rows = append(rows, []string{d.Label, strconv.Itoa(d.Score) + "/" + strconv.Itoa(d.MaxScore), cell(d.Description)})
	}
	doc.CustomTable(md.TableSet{
		Alignment: alignment("lrl"),
		Header:    []string{"Dimension", "Score", "Details"},
		Rows:      rows,
	}, md.TableOptions{AutoWrapText: false})
	return doc.String()
}
