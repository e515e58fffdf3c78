package folio

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNewHealth_Empty(t *testing.T) {
	h := NewHealth(nil, Summary{ProfitPercent: 50, XIRR: 30})
	if !h.IsEmpty {
		t.Errorf("IsEmpty = false, want true")
	}
	if h.Score != 0 || h.Grade != Poor {
		t.Errorf("Score, Grade = %d, %s, want 0, Poor", h.Score, h.Grade)
	}
}

func TestNewHealth_SingleHoldingConcentration(t *testing.T) {
	txs := []Transaction{NewBuy(day(2023, time.January, 1), "ACME", 1, 100)}
	holdings := NewHoldings(txs, nil, "INR")

	for _, s := range []Summary{{}, {ProfitPercent: 100, XIRR: 100}, {ProfitPercent: -10, XIRR: -10}} {
		h := NewHealth(holdings, s)
		if got := h.Dimensions[0]; got.Label != "Concentration" || got.Score != 3 {
			t.Errorf("concentration = %s %d, want Concentration 3", got.Label, got.Score)
		}
	}
}

func TestNewHealth_Scores(t *testing.T) {
	// 20 equal holdings over 5 sectors: 5% each.
	var txs []Transaction
	quotes := NewQuotes()
	for i := range 20 {
		symbol := fmt.Sprintf("S%02d", i)
		txs = append(txs, NewBuy(day(2023, time.January, 1), symbol, 1, 100))
		ticker := quote(symbol, 100)
		ticker.Sector = fmt.Sprintf("sector%d", i%5)
		quotes.Set(ticker)
	}
	holdings := NewHoldings(txs, quotes, "INR")

	h := NewHealth(holdings, Summary{ProfitPercent: 30, XIRR: 20})
	if h.Score != 100 || h.Grade != Excellent {
		t.Errorf("Score, Grade = %d, %s, want 100, Excellent", h.Score, h.Grade)
	}
	for _, d := range h.Dimensions {
		if d.MaxScore != 25 {
			t.Errorf("%s MaxScore = %d, want 25", d.Label, d.MaxScore)
		}
	}
	if d := h.Dimensions[1]; !strings.Contains(d.Description, "20 holdings") || !strings.Contains(d.Description, "5 sectors") {
		t.Errorf("diversification description %q does not quote the counts", d.Description)
	}
	if d := h.Dimensions[3]; !strings.Contains(d.Description, "20.00%") {
		t.Errorf("xirr description %q does not quote the xirr", d.Description)
	}
}

func TestScoreTables(t *testing.T) {
	testCases := []struct {
		name string
		got  int
		want int
	}{
		{"concentration 14.99", concentrationScore(14.99), 25},
		{"concentration 15", concentrationScore(15), 18},
		{"concentration 24.99", concentrationScore(24.99), 18},
		{"concentration 25", concentrationScore(25), 10},
		{"concentration 39.99", concentrationScore(39.99), 10},
		{"concentration 40", concentrationScore(40), 3},
		{"concentration 100", concentrationScore(100), 3},

		{"holdings 15", holdingsCountScore(15), 15},
		{"holdings 14", holdingsCountScore(14), 12},
		{"holdings 8", holdingsCountScore(8), 12},
		{"holdings 7", holdingsCountScore(7), 8},
		{"holdings 4", holdingsCountScore(4), 8},
		{"holdings 3", holdingsCountScore(3), 3},

		{"sectors 5", sectorCountScore(5), 10},
		{"sectors 4", sectorCountScore(4), 7},
		{"sectors 3", sectorCountScore(3), 7},
		{"sectors 2", sectorCountScore(2), 4},
		{"sectors 1", sectorCountScore(1), 1},
		{"sectors 0", sectorCountScore(0), 1},

		{"profit 30", profitabilityScore(30), 25},
		{"profit 15", profitabilityScore(15), 20},
		{"profit 5", profitabilityScore(5), 14},
		{"profit 0", profitabilityScore(0), 8},
		{"profit -0.01", profitabilityScore(-0.01), 2},

		{"xirr 20", xirrScore(20), 25},
		{"xirr 12", xirrScore(12), 20},
		{"xirr 8", xirrScore(8), 14},
		{"xirr 0", xirrScore(0), 7},
		{"xirr -1", xirrScore(-1), 1},
	}
	for _, tc := range testCases {
		if tc.got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestGradeOf(t *testing.T) {
	testCases := []struct {
		score int
		want  Grade
	}{
		{100, Excellent}, {80, Excellent}, {79, Good}, {60, Good}, {59, Fair}, {40, Fair}, {39, Poor}, {0, Poor},
	}
	for _, tc := range testCases {
		if got := GradeOf(tc.score); got != tc.want {
			t.Errorf("GradeOf(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
