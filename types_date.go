package folio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Day is the duration of a calendar day.
const Day = 24 * time.Hour

var relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)

// Today returns the current date at midnight UTC.
func Today() time.Time { return dayOf(time.Now()) }

// dayOf truncates t to midnight UTC of its calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a date from a string. It is lenient and accepts formats
// like "2025-7-1", full RFC3339 timestamps, and relative dates such as "-1d",
// "-2w", "-3m" or "-1y" (relative to today). "0d" is today.
func ParseDate(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	if str == "0d" || str == "" {
		return Today(), nil
	}

	if m := relativeDateRE.FindStringSubmatch(str); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid relative date %q: %w", str, err)
		}
		if m[1] == "-" {
			n = -n
		}
		today := Today()
		switch m[3] {
		case "d":
			return today.AddDate(0, 0, n), nil
		case "w":
			return today.AddDate(0, 0, 7*n), nil
		case "m":
			return today.AddDate(0, n, 0), nil
		case "y":
			return today.AddDate(n, 0, 0), nil
		}
	}

	if t, err := time.Parse(time.RFC3339, str); err == nil {
		return t, nil
	}
	t, err := time.Parse(readDateFormat, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", str, err)
	}
	return t, nil
}
