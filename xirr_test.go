package folio

import (
	"math"
	"testing"
	"time"
)

func TestXIRR(t *testing.T) {
	testCases := []struct {
		name  string
		flows []CashFlow
		want  float64
	}{
		{
			name: "doubling in a year",
			flows: []CashFlow{
				{Date: day(2021, time.January, 1), Amount: -1000},
				{Date: day(2022, time.January, 1), Amount: 2000},
			},
			want: 100,
		},
		{
			name: "10% over two years",
			flows: []CashFlow{
				{Date: day(2021, time.January, 1), Amount: -100},
				{Date: day(2023, time.January, 1), Amount: 121},
			},
			want: 10,
		},
		{
			name: "loss over a year",
			flows: []CashFlow{
				{Date: day(2021, time.January, 1), Amount: -1000},
				{Date: day(2022, time.January, 1), Amount: 800},
			},
			want: -20,
		},
		{
			name: "two investments",
			flows: []CashFlow{
				{Date: day(2021, time.January, 1), Amount: -1000},
				{Date: day(2022, time.January, 1), Amount: -1000},
				// 1000×1.1² + 1000×1.1 = 2310
				{Date: day(2023, time.January, 1), Amount: 2310},
			},
			want: 10,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := XIRR(tc.flows)
			if !near(float64(got), tc.want, 1e-4) {
				t.Errorf("XIRR() = %v, want %v", float64(got), tc.want)
			}
		})
	}
}

func TestXIRR_FewerThanTwoFlows(t *testing.T) {
	if got := XIRR(nil); got != 0 {
		t.Errorf("XIRR(nil) = %v, want 0", got)
	}
	single := []CashFlow{{Date: day(2021, time.January, 1), Amount: -100}}
	if got := XIRR(single); got != 0 {
		t.Errorf("XIRR(single) = %v, want 0", got)
	}
}

func TestXIRR_NoRootStaysFinite(t *testing.T) {
	// Only outflows: there is no rate for which the NPV is zero.
	flows := []CashFlow{
		{Date: day(2021, time.January, 1), Amount: -100},
		{Date: day(2021, time.June, 1), Amount: -100},
		{Date: day(2022, time.January, 1), Amount: -100},
	}
	got := float64(XIRR(flows))
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("XIRR() = %v, want a finite rate", got)
	}
}

func TestXIRR_SameDayFlows(t *testing.T) {
	// All flows on the origin date: the derivative is zero.
	flows := []CashFlow{
		{Date: day(2021, time.January, 1), Amount: -100},
		{Date: day(2021, time.January, 1), Amount: 100},
	}
	got := float64(XIRR(flows))
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("XIRR() = %v, want a finite rate", got)
	}
}

func TestXIRR_SteepLoss(t *testing.T) {
	testCases := []struct {
		name  string
		flows []CashFlow
		want  float64
	}{
		{
			name: "half lost in five months",
			flows: []CashFlow{
				{Date: day(2023, time.January, 1), Amount: -1000},
				{Date: day(2023, time.June, 1), Amount: 500},
			},
			want: -81.2783, // 0.5^(365/151) - 1
		},
		{
			name: "seventy percent lost in a year",
			flows: []CashFlow{
				{Date: day(2021, time.January, 1), Amount: -1000},
				{Date: day(2022, time.January, 1), Amount: 300},
			},
			want: -70,
		},
		{
			name: "nothing back",
			flows: []CashFlow{
				{Date: day(2021, time.January, 1), Amount: -100},
				{Date: day(2022, time.January, 1), Amount: 0},
			},
			want: -100,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := float64(XIRR(tc.flows))
			if !near(got, tc.want, 1e-2) {
				t.Errorf("XIRR() = %v, want %v", got, tc.want)
			}
			if got < -100 {
				t.Errorf("XIRR() = %v, want a rate no lower than -100%%", got)
			}
		})
	}
}
