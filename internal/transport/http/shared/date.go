package shared

import (
	"fmt"
	"time"
)

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// MonthWindow returns the first and last day of the calendar month.
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// SettlementWindow returns the overtime settlement period for the month: the
// 16th of the prior month through the 15th of the given month.
func SettlementWindow(year int, month time.Month) (time.Time, time.Time) {
	end := time.Date(year, month, 15, 0, 0, 0, 0, time.Local)
	start := end.AddDate(0, -1, 1)
	return start, end
}
