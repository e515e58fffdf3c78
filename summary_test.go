package folio

import (
	"testing"
	"time"
)

func TestNewSummary_PartialSale(t *testing.T) {
	txs := []Transaction{
		NewBuy(day(2023, time.January, 1), "ACME", 10, 100),
		NewSell(day(2023, time.June, 1), "ACME", 5, 120),
	}
	quotes := NewQuotes(quote("ACME", 130))

	s := NewSummary(txs, quotes, "INR", day(2024, time.January, 1))
	// buys are valued at the current price, sells at their own price.
	assertMoney(t, "TotalValue", s.TotalValue, INR(1300-600))
	assertMoney(t, "TotalCost", s.TotalCost, INR(1000-600))
	assertMoney(t, "Profit", s.Profit, INR(300))
	assertPercent(t, "ProfitPercent", s.ProfitPercent, 75)
	if s.XIRR <= 0 {
		t.Errorf("XIRR = %v, want a positive return", s.XIRR)
	}
}

func TestNewSummary_XIRR(t *testing.T) {
	// 100 invested, worth 121 exactly two years later: 10% a year.
	txs := []Transaction{NewBuy(day(2021, time.January, 1), "ACME", 1, 100)}
	quotes := NewQuotes(quote("ACME", 121))

	s := NewSummary(txs, quotes, "INR", day(2023, time.January, 1))
	if !near(float64(s.XIRR), 10, 1e-4) {
		t.Errorf("XIRR = %v, want 10", float64(s.XIRR))
	}
	assertPercent(t, "ProfitPercent", s.ProfitPercent, 21)
}

func TestNewSummary_XIRRSteepLoss(t *testing.T) {
	// halved in five months.
	txs := []Transaction{NewBuy(day(2023, time.January, 1), "ACME", 10, 100)}
	quotes := NewQuotes(quote("ACME", 50))

	s := NewSummary(txs, quotes, "INR", day(2023, time.June, 1))
	if !near(float64(s.XIRR), -81.2783, 1e-2) {
		t.Errorf("XIRR = %v, want -81.28", float64(s.XIRR))
	}
}

func TestNewSummary_ProfitIsValueMinusCost(t *testing.T) {
	ledgers := map[string][]Transaction{
		"empty": nil,
		"fractional": {
			NewBuy(day(2022, time.March, 3), "AAA", 0.3, 33.33),
			NewBuy(day(2022, time.April, 4), "BBB", 7, 0.1),
			NewSell(day(2022, time.May, 5), "AAA", 0.1, 41.07),
		},
		"unquoted and quoted": {
			NewBuy(day(2022, time.March, 3), "AAA", 3, 1234.56),
			NewBuy(day(2022, time.March, 3), "PRIV", 12, 9.99),
			NewSell(day(2023, time.January, 9), "PRIV", 2, 10.01),
		},
	}
	quotes := NewQuotes(quote("AAA", 1111.11), quote("BBB", 0.07))
	for name, txs := range ledgers {
		t.Run(name, func(t *testing.T) {
			s := NewSummary(txs, quotes, "INR", day(2024, time.January, 1))
			assertMoney(t, "Profit", s.Profit, s.TotalValue.Sub(s.TotalCost))
		})
	}
}

func TestNewSummary_NoCost(t *testing.T) {
	s := NewSummary(nil, nil, "INR", day(2024, time.January, 1))
	assertMoney(t, "TotalValue", s.TotalValue, INR(0))
	assertPercent(t, "ProfitPercent", s.ProfitPercent, 0)
	assertPercent(t, "XIRR", s.XIRR, 0)

	// sold above cost: the net invested capital is negative.
	txs := []Transaction{
		NewBuy(day(2023, time.January, 1), "ACME", 2, 100),
		NewSell(day(2023, time.February, 1), "ACME", 1, 300),
	}
	s = NewSummary(txs, nil, "INR", day(2024, time.January, 1))
	assertMoney(t, "TotalCost", s.TotalCost, INR(-100))
	assertPercent(t, "ProfitPercent", s.ProfitPercent, 0)
}

func TestNewSummary_IgnoresTransactionOrder(t *testing.T) {
	a := NewBuy(day(2021, time.January, 1), "ACME", 1, 100)
	b := NewBuy(day(2022, time.January, 1), "ACME", 1, 110)
	quotes := NewQuotes(quote("ACME", 130))
	now := day(2023, time.January, 1)

	s1 := NewSummary([]Transaction{a, b}, quotes, "INR", now)
	s2 := NewSummary([]Transaction{b, a}, quotes, "INR", now)
	assertPercent(t, "XIRR", s2.XIRR, s1.XIRR)
}
