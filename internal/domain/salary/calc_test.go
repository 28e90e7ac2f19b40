package salary

import (
	"errors"
	"math"
	"testing"
	"time"

	"worktime/internal/domain/schedule"
)

// fixedClassifier marks a hard-coded set of dates as rest days; everything
// else is a working day regardless of weekday.
type fixedClassifier struct {
	restDays map[string]bool
}

func (c fixedClassifier) IsRestDay(date time.Time) bool {
	return c.restDays[date.Format("2006-01-02")]
}

func weekdaysOnly() fixedClassifier {
	return fixedClassifier{restDays: map[string]bool{}}
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func monthWindows() (time.Time, time.Time, time.Time, time.Time) {
	stdStart := date("2025-06-01")
	stdEnd := date("2025-06-30")
	otStart := date("2025-05-16")
	otEnd := date("2025-06-15")
	return stdStart, stdEnd, otStart, otEnd
}

func TestCalculateStatsInvalidWindow(t *testing.T) {
	engine := NewEngine(weekdaysOnly())

	_, err := engine.CalculateStats(nil, nil, time.Time{}, date("2025-06-30"), date("2025-05-16"), date("2025-06-15"))
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("zero window start: got %v, want ErrInvalidWindow", err)
	}

	_, err = engine.CalculateStats(nil, nil, date("2025-06-30"), date("2025-06-01"), date("2025-05-16"), date("2025-06-15"))
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("reversed window: got %v, want ErrInvalidWindow", err)
	}
}

func TestShiftAllowance(t *testing.T) {
	cases := []struct {
		name       string
		kind       string
		start, end string
		want       int
	}{
		{name: "day shift earns nothing", kind: schedule.ShiftDay, start: "08:00", end: "16:00", want: 0},
		{name: "evening reaches into the band", kind: schedule.ShiftEvening, start: "14:00", end: "22:00", want: 240},
		{name: "night spans both bands", kind: schedule.ShiftNight, start: "22:00", end: "06:00", want: 480},
		{name: "early start gets the morning band", kind: schedule.ShiftDay, start: "04:00", end: "12:00", want: 120},
		{name: "late start misses the morning band", kind: schedule.ShiftDay, start: "06:00", end: "14:00", want: 0},
	}

	stdStart, stdEnd, otStart, otEnd := monthWindows()
	engine := NewEngine(weekdaysOnly())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shifts := []schedule.ShiftEntry{{
				EmployeeID: "emp-1",
				Date:       date("2025-06-10"),
				Kind:       tc.kind,
				StartTime:  tc.start,
				EndTime:    tc.end,
			}}
			stats, err := engine.CalculateStats(shifts, nil, stdStart, stdEnd, otStart, otEnd)
			if err != nil {
				t.Fatalf("CalculateStats: %v", err)
			}
			if stats.ShiftAllowanceMins != tc.want {
				t.Fatalf("allowance for %s-%s = %d, want %d", tc.start, tc.end, stats.ShiftAllowanceMins, tc.want)
			}
		})
	}
}

func TestStandbyTicketDeduction(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := monthWindows()
	engine := NewEngine(weekdaysOnly())

	day := date("2025-06-10")
	shifts := []schedule.ShiftEntry{{
		EmployeeID: "emp-1",
		Date:       day,
		Kind:       schedule.ShiftStandby,
		StartTime:  "00:00",
		EndTime:    "00:00",
	}}
	overtimes := []schedule.OvertimeEntry{{
		EmployeeID: "emp-1",
		Date:       day,
		Kind:       schedule.OvertimeTicket,
		StartTime:  "10:00",
		EndTime:    "10:20",
		Comment:    "INC-1042",
	}}

	stats, err := engine.CalculateStats(shifts, overtimes, stdStart, stdEnd, otStart, otEnd)
	if err != nil {
		t.Fatalf("CalculateStats: %v", err)
	}
	if stats.StandbyMins != 1420 {
		t.Fatalf("StandbyMins = %d, want 1420", stats.StandbyMins)
	}
	// The same ticket still accrues overtime on its own.
	if stats.WeekdayOtMins != 20 {
		t.Fatalf("WeekdayOtMins = %d, want 20", stats.WeekdayOtMins)
	}
}

func TestStandbyTicketDeductionWrappedSegment(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := monthWindows()
	engine := NewEngine(weekdaysOnly())

	day := date("2025-06-10")
	shifts := []schedule.ShiftEntry{{
		EmployeeID: "emp-1",
		Date:       day,
		Kind:       schedule.ShiftStandby,
		StartTime:  "18:00",
		EndTime:    "06:00",
	}}
	overtimes := []schedule.OvertimeEntry{
		// Starts in the pre-midnight segment.
		{EmployeeID: "emp-1", Date: day, Kind: schedule.OvertimeTicket, StartTime: "23:00", EndTime: "23:30"},
		// Starts in the wrapped post-midnight segment.
		{EmployeeID: "emp-1", Date: day, Kind: schedule.OvertimeTicket, StartTime: "02:00", EndTime: "03:00"},
		// Outside the standby interval entirely.
		{EmployeeID: "emp-1", Date: day, Kind: schedule.OvertimeTicket, StartTime: "10:00", EndTime: "11:00"},
	}

	stats, err := engine.CalculateStats(shifts, overtimes, stdStart, stdEnd, otStart, otEnd)
	if err != nil {
		t.Fatalf("CalculateStats: %v", err)
	}
	// 720 raw minutes, minus the 30 and 60 minute tickets inside the interval.
	if stats.StandbyMins != 630 {
		t.Fatalf("StandbyMins = %d, want 630", stats.StandbyMins)
	}
}

func TestStandbyNeverNegative(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := monthWindows()
	engine := NewEngine(weekdaysOnly())

	day := date("2025-06-10")
	shifts := []schedule.ShiftEntry{{
		EmployeeID: "emp-1",
		Date:       day,
		Kind:       schedule.ShiftStandby,
		StartTime:  "20:00",
		EndTime:    "22:00",
	}}
	overtimes := []schedule.OvertimeEntry{{
		EmployeeID: "emp-1",
		Date:       day,
		Kind:       schedule.OvertimeTicket,
		StartTime:  "20:30",
		EndTime:    "00:30",
	}}

	stats, err := engine.CalculateStats(shifts, overtimes, stdStart, stdEnd, otStart, otEnd)
	if err != nil {
		t.Fatalf("CalculateStats: %v", err)
	}
	if stats.StandbyMins != 0 {
		t.Fatalf("StandbyMins = %d, want 0", stats.StandbyMins)
	}
}

func TestRestDayOvertimeClassification(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := monthWindows()
	classifier := fixedClassifier{restDays: map[string]bool{"2025-06-08": true}}
	engine := NewEngine(classifier)

	overtimes := []schedule.OvertimeEntry{
		{EmployeeID: "emp-1", Date: date("2025-06-08"), Kind: schedule.OvertimeOther, StartTime: "08:00", EndTime: "12:00"},
		{EmployeeID: "emp-1", Date: date("2025-06-09"), Kind: schedule.OvertimeOther, StartTime: "08:00", EndTime: "12:00"},
	}

	stats, err := engine.CalculateStats(nil, overtimes, stdStart, stdEnd, otStart, otEnd)
	if err != nil {
		t.Fatalf("CalculateStats: %v", err)
	}
	if stats.RestDayOtMins != 240 {
		t.Fatalf("RestDayOtMins = %d, want 240", stats.RestDayOtMins)
	}
	if stats.WeekdayOtMins != 240 {
		t.Fatalf("WeekdayOtMins = %d, want 240", stats.WeekdayOtMins)
	}
}

func TestDualAccountingWindows(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := monthWindows()
	engine := NewEngine(weekdaysOnly())

	overtimes := []schedule.OvertimeEntry{
		// Substitution on June 25 counts: inside the calendar month even
		// though the settlement window already closed on the 15th.
		{EmployeeID: "emp-1", Date: date("2025-06-25"), Kind: schedule.OvertimeSubstitution, StartTime: "16:00", EndTime: "18:00"},
		// Ticket on May 20 counts: inside the settlement window even though
		// it predates the calendar month.
		{EmployeeID: "emp-1", Date: date("2025-05-20"), Kind: schedule.OvertimeTicket, StartTime: "10:00", EndTime: "11:00"},
		// Ticket on June 25 does not count: past the settlement close.
		{EmployeeID: "emp-1", Date: date("2025-06-25"), Kind: schedule.OvertimeTicket, StartTime: "10:00", EndTime: "11:00"},
		// Substitution on May 20 does not count: outside the calendar month.
		{EmployeeID: "emp-1", Date: date("2025-05-20"), Kind: schedule.OvertimeSubstitution, StartTime: "16:00", EndTime: "18:00"},
	}

	stats, err := engine.CalculateStats(nil, overtimes, stdStart, stdEnd, otStart, otEnd)
	if err != nil {
		t.Fatalf("CalculateStats: %v", err)
	}
	if stats.WeekdayOtMins != 180 {
		t.Fatalf("WeekdayOtMins = %d, want 180", stats.WeekdayOtMins)
	}
}

func TestUnknownKindsSkipped(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := monthWindows()
	engine := NewEngine(weekdaysOnly())

	shifts := []schedule.ShiftEntry{{
		EmployeeID: "emp-1",
		Date:       date("2025-06-10"),
		Kind:       "mystery",
		StartTime:  "18:00",
		EndTime:    "23:00",
	}}
	overtimes := []schedule.OvertimeEntry{{
		EmployeeID: "emp-1",
		Date:       date("2025-06-10"),
		Kind:       "mystery",
		StartTime:  "08:00",
		EndTime:    "12:00",
	}}

	stats, err := engine.CalculateStats(shifts, overtimes, stdStart, stdEnd, otStart, otEnd)
	if err != nil {
		t.Fatalf("CalculateStats: %v", err)
	}
	if stats != (Stats{}) {
		t.Fatalf("unknown kinds leaked into stats: %+v", stats)
	}
}

func TestVacationAndSickDays(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := monthWindows()
	engine := NewEngine(weekdaysOnly())

	shifts := []schedule.ShiftEntry{
		{EmployeeID: "emp-1", Date: date("2025-06-02"), Kind: schedule.ShiftVacation},
		{EmployeeID: "emp-1", Date: date("2025-06-03"), Kind: schedule.ShiftVacation},
		{EmployeeID: "emp-1", Date: date("2025-06-04"), Kind: schedule.ShiftSick},
		// Outside the month, must not count.
		{EmployeeID: "emp-1", Date: date("2025-07-01"), Kind: schedule.ShiftVacation},
	}

	stats, err := engine.CalculateStats(shifts, nil, stdStart, stdEnd, otStart, otEnd)
	if err != nil {
		t.Fatalf("CalculateStats: %v", err)
	}
	if stats.VacationDays != 2 || stats.SickDays != 1 {
		t.Fatalf("VacationDays = %d, SickDays = %d, want 2 and 1", stats.VacationDays, stats.SickDays)
	}
	if stats.NightStandbyWorkMins != 0 {
		t.Fatalf("NightStandbyWorkMins = %d, want 0", stats.NightStandbyWorkMins)
	}
}

func TestCalculateFinancials(t *testing.T) {
	base := 174.0 * 2000 // hourly rate of exactly 2000
	stats := Stats{
		ShiftAllowanceMins: 600,
		StandbyMins:        1200,
		WeekdayOtMins:      60,
		RestDayOtMins:      90,
	}

	fin := CalculateFinancials(base, stats)

	assertMoney(t, "ShiftAllowancePay", fin.ShiftAllowancePay, 10*2000*0.30)
	assertMoney(t, "StandbyPay", fin.StandbyPay, 20*2000*0.20)
	assertMoney(t, "WeekdayOtPay", fin.WeekdayOtPay, 1*2000*1.50)
	assertMoney(t, "RestDayOtPay", fin.RestDayOtPay, 1.5*2000*2.00)
}

func TestFinancialsNoRounding(t *testing.T) {
	// 100 minutes must be paid as 100/60 hours, not as a rounded 2 hours.
	fin := CalculateFinancials(174*3000, Stats{WeekdayOtMins: 100})
	assertMoney(t, "WeekdayOtPay", fin.WeekdayOtPay, 100.0/60*3000*1.50)
}

func assertMoney(t *testing.T, label string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
}

func TestInWindowDayBoundary(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	// A date parsed at midnight local time against window edges at 23:00
	// must still compare by calendar day.
	d := time.Date(2025, 6, 1, 0, 0, 0, 0, loc)
	start := time.Date(2025, 6, 1, 23, 0, 0, 0, loc)
	end := time.Date(2025, 6, 30, 23, 0, 0, 0, loc)

	if !InWindow(d, start, end) {
		t.Fatal("first of month fell out of its own window")
	}
	if InWindow(time.Date(2025, 5, 31, 23, 59, 0, 0, loc), start, end) {
		t.Fatal("prior day leaked into the window")
	}
}

func TestInWindowMixedLocations(t *testing.T) {
	// Record dates come off DATE columns at midnight UTC; window edges are
	// built in the server's local zone. East of UTC the same wall-clock day
	// is a later instant, which must not push the boundary date out.
	east := time.FixedZone("CEST", 2*3600)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, east)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, east)

	lastDay := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	if !InWindow(lastDay, start, end) {
		t.Fatal("UTC date on the window's last day was excluded")
	}
	firstDay := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !InWindow(firstDay, start, end) {
		t.Fatal("UTC date on the window's first day was excluded")
	}
	if InWindow(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), start, end) {
		t.Fatal("day past the window leaked in")
	}

	// West of UTC the drift runs the other way.
	west := time.FixedZone("EST", -5*3600)
	if !InWindow(firstDay, time.Date(2025, 6, 1, 0, 0, 0, 0, west), time.Date(2025, 6, 30, 0, 0, 0, 0, west)) {
		t.Fatal("UTC date on the first day was excluded against western edges")
	}
}

func TestCalculateStatsWindowEdgeAcrossZones(t *testing.T) {
	east := time.FixedZone("CEST", 2*3600)
	stdStart := time.Date(2025, 6, 1, 0, 0, 0, 0, east)
	stdEnd := time.Date(2025, 6, 30, 0, 0, 0, 0, east)
	otStart := time.Date(2025, 5, 16, 0, 0, 0, 0, east)
	otEnd := time.Date(2025, 6, 15, 0, 0, 0, 0, east)

	engine := NewEngine(weekdaysOnly())

	shifts := []schedule.ShiftEntry{{
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Kind:       schedule.ShiftVacation,
	}}
	overtimes := []schedule.OvertimeEntry{{
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Kind:       schedule.OvertimeTicket,
		StartTime:  "10:00",
		EndTime:    "11:00",
	}}

	stats, err := engine.CalculateStats(shifts, overtimes, stdStart, stdEnd, otStart, otEnd)
	if err != nil {
		t.Fatalf("CalculateStats: %v", err)
	}
	if stats.VacationDays != 1 {
		t.Fatalf("VacationDays = %d, want 1: shift on the month's last day was dropped", stats.VacationDays)
	}
	if stats.WeekdayOtMins != 60 {
		t.Fatalf("WeekdayOtMins = %d, want 60: ticket on the settlement close was dropped", stats.WeekdayOtMins)
	}
}

func TestMonthScenario(t *testing.T) {
	stdStart, stdEnd, otStart, otEnd := monthWindows()
	classifier := fixedClassifier{restDays: map[string]bool{
		"2025-06-07": true,
		"2025-06-08": true,
	}}
	engine := NewEngine(classifier)

	shifts := []schedule.ShiftEntry{
		{EmployeeID: "emp-1", Date: date("2025-06-02"), Kind: schedule.ShiftNight, StartTime: "22:00", EndTime: "06:00"},
		{EmployeeID: "emp-1", Date: date("2025-06-03"), Kind: schedule.ShiftDay, StartTime: "08:00", EndTime: "16:00"},
		{EmployeeID: "emp-1", Date: date("2025-06-04"), Kind: schedule.ShiftStandby, StartTime: "00:00", EndTime: "00:00"},
		{EmployeeID: "emp-1", Date: date("2025-06-05"), Kind: schedule.ShiftVacation},
	}
	overtimes := []schedule.OvertimeEntry{
		{EmployeeID: "emp-1", Date: date("2025-06-04"), Kind: schedule.OvertimeTicket, StartTime: "14:00", EndTime: "15:00", Comment: "INC-7"},
		{EmployeeID: "emp-1", Date: date("2025-06-07"), Kind: schedule.OvertimeSubstitution, StartTime: "08:00", EndTime: "12:00"},
	}

	stats, err := engine.CalculateStats(shifts, overtimes, stdStart, stdEnd, otStart, otEnd)
	if err != nil {
		t.Fatalf("CalculateStats: %v", err)
	}

	if stats.ShiftAllowanceMins != 480 {
		t.Fatalf("ShiftAllowanceMins = %d, want 480", stats.ShiftAllowanceMins)
	}
	if stats.StandbyMins != 1380 {
		t.Fatalf("StandbyMins = %d, want 1380", stats.StandbyMins)
	}
	if stats.WeekdayOtMins != 60 {
		t.Fatalf("WeekdayOtMins = %d, want 60", stats.WeekdayOtMins)
	}
	if stats.RestDayOtMins != 240 {
		t.Fatalf("RestDayOtMins = %d, want 240", stats.RestDayOtMins)
	}
	if stats.VacationDays != 1 {
		t.Fatalf("VacationDays = %d, want 1", stats.VacationDays)
	}
}
