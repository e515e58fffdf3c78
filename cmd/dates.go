package cmd

import (
	"fmt"
	"time"

	"github.com/etnz/folio"
)

// dateRange parses an inclusive range of days. An empty start is the
// beginning of time, an empty end is today.
func dateRange(start, end string) (time.Time, time.Time, error) {
	var from time.Time
	if start != "" {
		var err error
		if from, err = folio.ParseDate(start); err != nil {
			return from, from, fmt.Errorf("error parsing start date: %w", err)
		}
	}
	to, err := folio.ParseDate(end)
	if err != nil {
		return from, to, fmt.Errorf("error parsing end date: %w", err)
	}
	// the end day is included entirely.
	to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	if to.Before(from) {
		return from, to, fmt.Errorf("start date %s is after end date %s", start, end)
	}
	return from, to, nil
}

// valuationTime parses the valuation date; today means now.
func valuationTime(date string) (time.Time, error) {
	if date == "" || date == "0d" {
		return time.Now(), nil
	}
	return folio.ParseDate(date)
}
