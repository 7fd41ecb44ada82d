package utils

import (
	"fmt"
	"strings"
	"time"
)

// GenerateDates returns days consecutive ISO dates starting at start
func GenerateDates(start string, days int) ([]string, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}
	first, err := ParseDate(start)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, first.AddDate(0, 0, i).Format(DATE_LAYOUT))
	}
	return dates, nil
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DATE_LAYOUT, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format: %q", value)
	}
	return d, nil
}

// DefaultStartDate returns the day after now as YYYY-MM-DD
func DefaultStartDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(DATE_LAYOUT)
}

// ParseTimestamp parses an ISO-8601 timestamp from the fare endpoint.
// Values without an offset are taken as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{LOCAL_DATETIME_LAYOUT, SPACED_DATETIME_LAYOUT} {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO-8601 timestamp: %q", value)
}
