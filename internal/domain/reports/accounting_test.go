package reports

import (
	"testing"
	"time"

	"worktime/internal/domain/salary"
	"worktime/internal/domain/schedule"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func windows() (time.Time, time.Time, time.Time, time.Time) {
	return day("2025-06-01"), day("2025-06-30"), day("2025-05-16"), day("2025-06-15")
}

func TestBuildAccountingHeader(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := windows()

	accounting := BuildAccounting("Kiss Anna", "dispatcher", salary.Stats{}, nil, stdStart, stdEnd, otStart, otEnd, nil)

	if accounting.Title != "Havi összesítő - 2025. június" {
		t.Fatalf("Title = %q", accounting.Title)
	}
	if accounting.EmployeeLine != "Név: Kiss Anna (dispatcher)" {
		t.Fatalf("EmployeeLine = %q", accounting.EmployeeLine)
	}
	if len(accounting.Summary) != 7 {
		t.Fatalf("summary has %d rows, want 7", len(accounting.Summary))
	}
}

func TestBuildAccountingSummaryValues(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := windows()
	stats := salary.Stats{
		ShiftAllowanceMins: 450, // rounds up to 8 hours for display
		StandbyMins:        1380,
		WeekdayOtMins:      90,
		RestDayOtMins:      0,
		VacationDays:       2,
		SickDays:           1,
	}

	accounting := BuildAccounting("Kiss Anna", "dispatcher", stats, nil, stdStart, stdEnd, otStart, otEnd, nil)

	expect := map[string]string{
		"Műszakpótlék":         "8 óra",
		"Készenlét":            "23:00",
		"Túlóra (Hétköznap)":   "1:30",
		"Túlóra (Pihenőnap)":   "0:00",
		"Éjszakai munkavégzés": "0:00",
		"Szabadság":            "2 nap",
		"Betegállomány":        "1 nap",
	}
	for _, row := range accounting.Summary {
		want, ok := expect[row.Label]
		if !ok {
			t.Fatalf("unexpected summary label %q", row.Label)
		}
		if row.Value != want {
			t.Fatalf("summary %q = %q, want %q", row.Label, row.Value, want)
		}
	}
}

func TestBuildOvertimeRows(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := windows()

	overtimes := []schedule.OvertimeEntry{
		{ID: "a", Date: day("2025-06-20"), Kind: schedule.OvertimeSubstitution, StartTime: "16:00", EndTime: "18:00"},
		{ID: "b", Date: day("2025-05-20"), Kind: schedule.OvertimeTicket, StartTime: "10:00", EndTime: "10:45", Comment: "INC-12"},
		// Ticket past the settlement close, excluded by default.
		{ID: "c", Date: day("2025-06-20"), Kind: schedule.OvertimeTicket, StartTime: "09:00", EndTime: "10:00", Comment: "INC-40"},
		{ID: "d", Date: day("2025-06-10"), Kind: schedule.OvertimeOther, StartTime: "07:00", EndTime: "08:00", Comment: "leltár"},
	}

	rows := BuildOvertimeRows(overtimes, stdStart, stdEnd, otStart, otEnd, nil)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	// Sorted by date.
	if rows[0].Date != "2025-05-20" || rows[2].Date != "2025-06-20" {
		t.Fatalf("rows out of order: %v", rows)
	}
	if rows[0].Reason != "Ticket #ID:INC-12" {
		t.Fatalf("ticket reason = %q", rows[0].Reason)
	}
	if rows[1].Reason != "Egyéb (leltár)" {
		t.Fatalf("other reason = %q", rows[1].Reason)
	}
	if rows[2].Reason != "Helyettesítés" {
		t.Fatalf("substitution reason = %q", rows[2].Reason)
	}
	if rows[0].Duration != "0:45" {
		t.Fatalf("duration = %q, want 0:45", rows[0].Duration)
	}
}

func TestBuildOvertimeRowsExtraIDs(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := windows()

	overtimes := []schedule.OvertimeEntry{
		// Outside both windows, included only because it is force-listed.
		{ID: "z", Date: day("2025-06-20"), Kind: schedule.OvertimeTicket, StartTime: "09:00", EndTime: "10:00", Comment: "INC-9"},
	}

	if rows := BuildOvertimeRows(overtimes, stdStart, stdEnd, otStart, otEnd, nil); len(rows) != 0 {
		t.Fatalf("entry leaked in without extra ID: %v", rows)
	}
	rows := BuildOvertimeRows(overtimes, stdStart, stdEnd, otStart, otEnd, []string{"z"})
	if len(rows) != 1 {
		t.Fatalf("extra ID not honored, got %d rows", len(rows))
	}
}

func TestRenderPDF(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := windows()
	accounting := BuildAccounting("Kiss Anna", "dispatcher", salary.Stats{StandbyMins: 600}, []schedule.OvertimeEntry{
		{ID: "a", Date: day("2025-06-20"), Kind: schedule.OvertimeSubstitution, StartTime: "16:00", EndTime: "18:00"},
	}, stdStart, stdEnd, otStart, otEnd, nil)

	body, err := RenderPDF(accounting)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if len(body) == 0 {
		t.Fatal("empty PDF output")
	}
	if string(body[:5]) != "%PDF-" {
		t.Fatalf("output does not start with a PDF header: %q", body[:5])
	}
}

func TestRenderXLSX(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := windows()
	accounting := BuildAccounting("Kiss Anna", "dispatcher", salary.Stats{WeekdayOtMins: 120}, nil, stdStart, stdEnd, otStart, otEnd, nil)

	body, err := RenderXLSX(accounting)
	if err != nil {
		t.Fatalf("RenderXLSX: %v", err)
	}
	// XLSX is a zip container.
	if len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Fatal("output is not a zip archive")
	}
}
