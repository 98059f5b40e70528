package utils

import (
	"fmt"
	"time"
)

// ParseReportDate parses a reporting-period boundary that can be either
// RFC3339 or YYYY-MM-DD format. Only the date part is kept; royalty report
// periods are date-granular.
func ParseReportDate(dateStr string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected RFC3339 or YYYY-MM-DD, got %s", dateStr)
	}

	return t, nil
}

// MonthStart returns midnight UTC on the first day of t's calendar month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthKey formats t as a YYYY-MM bucket key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
