package folio

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected time.Time
		err      bool
	}{
		// Standard ISO Format
		{"2025-01-15", day(2025, time.January, 15), false},
		{"2025-7-1", day(2025, time.July, 1), false},
		{" 2025-07-01 ", day(2025, time.July, 1), false},
		{"2025-07-01T00:00:00Z", day(2025, time.July, 1), false},
		{"invalid-date", time.Time{}, true},
		{"2025-13-01", time.Time{}, true},

		// Relative Duration Format
		{"", today, false},
		{"0d", today, false},
		{"-1d", today.AddDate(0, 0, -1), false},
		{"+1d", today.AddDate(0, 0, 1), false},
		{"1d", time.Time{}, true},
		{"-0d", today, false},
		{"-2w", today.AddDate(0, 0, -14), false},
		{"+1m", today.AddDate(0, 1, 0), false},
		{"-1y", today.AddDate(-1, 0, 0), false},
		{"-1q", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDate(%q) error = %v, want error %v", tt.input, err, tt.err)
			}
			if !tt.err && !got.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToday(t *testing.T) {
	today := Today()
	if today.Hour() != 0 || today.Minute() != 0 || today.Location() != time.UTC {
		t.Errorf("Today() = %v, want midnight UTC", today)
	}
	if d := time.Since(today); d < 0 || d > 2*Day {
		t.Errorf("Today() = %v is not today", today)
	}
}

func TestPeriodKey(t *testing.T) {
	at := time.Date(2024, time.March, 5, 15, 4, 0, 0, time.UTC)
	if got := Yearly.Key(at); got != "2024" {
		t.Errorf("Yearly.Key() = %q, want 2024", got)
	}
	if got := Monthly.Key(at); got != "2024-03" {
		t.Errorf("Monthly.Key() = %q, want 2024-03", got)
	}
	for _, s := range []string{"monthly", "Month", " yearly "} {
		if _, err := ParsePeriod(s); err != nil {
			t.Errorf("ParsePeriod(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParsePeriod("weekly"); err == nil {
		t.Error("ParsePeriod(weekly) want error")
	}
}
