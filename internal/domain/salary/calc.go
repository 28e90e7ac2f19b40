package salary

import (
	"time"

	"worktime/internal/domain/schedule"
)

// Classifier decides whether a date counts as a rest day for overtime rates.
type Classifier interface {
	IsRestDay(date time.Time) bool
}

// Engine turns shift and overtime snapshots into aggregate statistics. It
// holds no mutable state and is safe for concurrent use.
type Engine struct {
	calendar Classifier
}

func NewEngine(calendar Classifier) *Engine {
	return &Engine{calendar: calendar}
}

// CalculateStats tallies one employee's records over two accounting windows.
// Shift-derived figures and substitution overtime follow the calendar month
// (stdStart..stdEnd); ticket and other overtime follow the settlement period
// (otStart..otEnd), which runs from the 16th of the prior month to the 15th.
func (e *Engine) CalculateStats(shifts []schedule.ShiftEntry, overtimes []schedule.OvertimeEntry, stdStart, stdEnd, otStart, otEnd time.Time) (Stats, error) {
	var stats Stats

	if stdStart.IsZero() || stdEnd.IsZero() || otStart.IsZero() || otEnd.IsZero() {
		return stats, ErrInvalidWindow
	}
	if stdEnd.Before(stdStart) || otEnd.Before(otStart) {
		return stats, ErrInvalidWindow
	}

	tickets := ticketsByDate(overtimes)

	for _, shift := range shifts {
		if !InWindow(shift.Date, stdStart, stdEnd) {
			continue
		}
		switch shift.Kind {
		case schedule.ShiftVacation:
			stats.VacationDays++
		case schedule.ShiftSick:
			stats.SickDays++
		case schedule.ShiftStandby:
			stats.StandbyMins += netStandbyMinutes(shift, tickets[dateKey(shift.Date)])
		case schedule.ShiftDay, schedule.ShiftEvening, schedule.ShiftNight:
			stats.ShiftAllowanceMins += shiftAllowanceMinutes(shift.StartTime, shift.EndTime)
		}
	}

	for _, overtime := range overtimes {
		switch overtime.Kind {
		case schedule.OvertimeSubstitution:
			if !InWindow(overtime.Date, stdStart, stdEnd) {
				continue
			}
		case schedule.OvertimeTicket, schedule.OvertimeOther:
			if !InWindow(overtime.Date, otStart, otEnd) {
				continue
			}
		default:
			continue
		}

		duration := DurationMinutes(overtime.StartTime, overtime.EndTime)
		if e.calendar.IsRestDay(overtime.Date) {
			stats.RestDayOtMins += duration
		} else {
			stats.WeekdayOtMins += duration
		}
	}

	return stats, nil
}

// CalculateFinancials converts minute aggregates into monetary amounts on the
// base-salary/174 hourly rate. No rounding: whole-hour rounding is applied by
// the presentation layer only.
func CalculateFinancials(baseSalary float64, stats Stats) Financials {
	rate := HourlyRate(baseSalary)
	return Financials{
		ShiftAllowancePay: float64(stats.ShiftAllowanceMins) / 60 * rate * ShiftAllowanceRate,
		StandbyPay:        float64(stats.StandbyMins) / 60 * rate * StandbyRate,
		WeekdayOtPay:      float64(stats.WeekdayOtMins) / 60 * rate * WeekdayOtRate,
		RestDayOtPay:      float64(stats.RestDayOtMins) / 60 * rate * RestDayOtRate,
	}
}

func HourlyRate(baseSalary float64) float64 {
	return baseSalary / MonthlyHoursDivisor
}

// shiftAllowanceMinutes sums the overlap of a shift with the premium bands:
// 18:00-24:00, the wrapped 00:00-06:00 of the next day, and the same-day
// 00:00-06:00 band when the shift itself starts before 06:00.
func shiftAllowanceMinutes(start, end string) int {
	s := TimeToMinutes(start)
	e := TimeToMinutes(end)
	if e < s {
		e += FullDayMins
	}

	allowance := OverlapMinutes(s, e, eveningBandStart, FullDayMins)
	allowance += OverlapMinutes(s, e, FullDayMins, nightBandEnd)
	if s < morningBandEnd {
		allowance += OverlapMinutes(s, e, 0, morningBandEnd)
	}
	return allowance
}

// netStandbyMinutes deducts handled tickets from the raw standby span. A
// ticket counts when its start time falls inside the standby interval, in
// either segment of a midnight-wrapped interval, and its full duration is
// deducted even where it runs past the interval's end.
func netStandbyMinutes(shift schedule.ShiftEntry, tickets []schedule.OvertimeEntry) int {
	net := DurationMinutes(shift.StartTime, shift.EndTime)

	start := TimeToMinutes(shift.StartTime)
	end := TimeToMinutes(shift.EndTime)
	if shift.StartTime == "00:00" && shift.EndTime == "00:00" {
		start, end = 0, FullDayMins
	} else if end < start {
		end += FullDayMins
	}

	for _, ticket := range tickets {
		ticketStart := TimeToMinutes(ticket.StartTime)
		inFirstSegment := ticketStart >= start && ticketStart < end
		inWrappedSegment := end > FullDayMins && ticketStart < end-FullDayMins
		if inFirstSegment || inWrappedSegment {
			net -= DurationMinutes(ticket.StartTime, ticket.EndTime)
		}
	}

	if net < 0 {
		return 0
	}
	return net
}

func ticketsByDate(overtimes []schedule.OvertimeEntry) map[string][]schedule.OvertimeEntry {
	byDate := make(map[string][]schedule.OvertimeEntry)
	for _, overtime := range overtimes {
		if overtime.Kind != schedule.OvertimeTicket {
			continue
		}
		key := dateKey(overtime.Date)
		byDate[key] = append(byDate[key], overtime)
	}
	return byDate
}

// InWindow compares calendar days by their wall-clock date, never as
// instants. Record dates scanned from DATE columns sit at midnight UTC while
// window edges are built in local time; comparing formatted days keeps a
// boundary date inside its window regardless of either side's zone or
// time of day.
func InWindow(date, start, end time.Time) bool {
	d := dateKey(date)
	return d >= dateKey(start) && d <= dateKey(end)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
