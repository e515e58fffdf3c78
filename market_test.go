package folio

import (
	"slices"
	"testing"
)

func TestQuotes_Get(t *testing.T) {
	q := NewQuotes(quote(" acme ", 10), quote("BETA", 20))

	tests := []struct {
		symbol string
		found  bool
		price  float64
	}{
		{"ACME", true, 10},
		{"acme", true, 10},
		{"Beta", true, 20},
		{"GAMMA", false, 0},
	}
	for _, tt := range tests {
		got, ok := q.Get(tt.symbol)
		if ok != tt.found {
			t.Errorf("Get(%q) found = %v, want %v", tt.symbol, ok, tt.found)
			continue
		}
		if ok && got.Price.InexactFloat64() != tt.price {
			t.Errorf("Get(%q) price = %v, want %v", tt.symbol, got.Price, tt.price)
		}
	}
	if got := q.Symbols(); !slices.Equal(got, []string{"ACME", "BETA"}) {
		t.Errorf("Symbols() = %v", got)
	}
}

func TestQuotes_Nil(t *testing.T) {
	var q *Quotes
	if _, ok := q.Get("ACME"); ok {
		t.Error("nil Quotes found a ticker")
	}
	if q.Len() != 0 || q.Symbols() != nil {
		t.Error("nil Quotes is not empty")
	}
	if c := q.Clone(); c.Len() != 0 {
		t.Error("Clone() of nil Quotes is not empty")
	}
}

func TestQuotes_CloneIsIndependent(t *testing.T) {
	q := NewQuotes(quote("ACME", 10))
	c := q.Clone()
	c.Set(quote("ACME", 99))
	c.Set(quote("BETA", 1))

	got, _ := q.Get("ACME")
	if got.Price.InexactFloat64() != 10 || q.Has("BETA") {
		t.Errorf("Clone() shares state with the original: %+v", q)
	}
}
