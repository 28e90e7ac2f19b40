package shared

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-06-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if parsed.Year() != 2025 || parsed.Month() != time.June || parsed.Day() != 15 {
		t.Fatalf("ParseDate(2025-06-15) = %v", parsed)
	}

	if _, err := ParseDate("2025-06-15T08:30:00Z"); err != nil {
		t.Fatalf("RFC3339 rejected: %v", err)
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatal("empty date accepted")
	}
	if _, err := ParseDate("15/06/2025"); err == nil {
		t.Fatal("slash date accepted")
	}
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(2025, time.June)
	if start.Format("2006-01-02") != "2025-06-01" {
		t.Fatalf("start = %v", start)
	}
	if end.Format("2006-01-02") != "2025-06-30" {
		t.Fatalf("end = %v", end)
	}

	// Leap February.
	_, end = MonthWindow(2028, time.February)
	if end.Format("2006-01-02") != "2028-02-29" {
		t.Fatalf("leap february end = %v", end)
	}
}

func TestSettlementWindow(t *testing.T) {
	start, end := SettlementWindow(2025, time.June)
	if start.Format("2006-01-02") != "2025-05-16" {
		t.Fatalf("start = %v", start)
	}
	if end.Format("2006-01-02") != "2025-06-15" {
		t.Fatalf("end = %v", end)
	}

	// January reaches back into the previous year.
	start, end = SettlementWindow(2026, time.January)
	if start.Format("2006-01-02") != "2025-12-16" {
		t.Fatalf("january start = %v", start)
	}
	if end.Format("2006-01-02") != "2026-01-15" {
		t.Fatalf("january end = %v", end)
	}
}
