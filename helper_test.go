package folio

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// day is a helper for test to create a midnight UTC date.
func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

// dec is a helper for test to create an optional decimal.
func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// quote is a helper for test to create a ticker with a price only.
func quote(symbol string, price float64) Ticker {
	return Ticker{Symbol: symbol, Price: decimal.NewFromFloat(price)}
}

func assertMoney(t *testing.T, name string, got, want Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %v, want %v", name, got.Decimal(), want.Decimal())
	}
}

func assertPercent(t *testing.T, name string, got, want Percent) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %v, want %v", name, float64(got), float64(want))
	}
}

func near(a, b, tolerance float64) bool { return math.Abs(a-b) <= tolerance }
