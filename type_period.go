package folio

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar bucket used by the time-bucketed analysis.
type Period int

const (
	Monthly Period = iota
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the period (e.g., "month", "year").
func (p Period) Name() string {
	switch p {
	case Monthly:
		return "month"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// Key returns the key of the period containing t: "2006" for Yearly and
// "2006-01" for Monthly. Keys of the same period sort chronologically.
func (p Period) Key(t time.Time) string {
	switch p {
	case Yearly:
		return t.Format("2006")
	default:
		return t.Format("2006-01")
	}
}

// ParsePeriod parses a period name.
func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %s", p)
	}
}
