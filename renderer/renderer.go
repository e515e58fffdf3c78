// Package renderer formats the results of the calculation core as markdown.
//
// Rendering only reads the results it is given: the privacy and currency
// toggles change the text, never the numbers.
package renderer

import (
	"strings"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// masked replaces every monetary amount in privacy mode.
const masked = "••••"

// Options holds the presentation toggles.
type Options struct {
	Privacy bool // mask monetary amounts, keep percentages
	Symbol  bool // format amounts with the currency symbol ("₹1,234.50") instead of the code ("1,234.50 INR")
}

// Money formats m according to the options.
func (o Options) Money(m folio.Money) string {
	if o.Privacy {
		return masked
	}
	if o.Symbol {
		return m.String()
	}
	return m.Code()
}

// SignedMoney formats m with an explicit sign, zero being "-".
func (o Options) SignedMoney(m folio.Money) string {
	switch {
	case o.Privacy:
		return masked
	case m.IsZero():
		return "-"
	case m.IsPositive():
		return "+" + o.Money(m)
	default:
		return o.Money(m)
	}
}

// alignment maps one 'l' or 'r' per column to the table alignments.
func alignment(columns string) []md.TableAlignment {
	a := make([]md.TableAlignment, len(columns))
	for i, c := range columns {
		a[i] = md.AlignLeft
		if c == 'r' {
			a[i] = md.AlignRight
		}
	}
	return a
}

// cell escapes the pipes of free text.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
