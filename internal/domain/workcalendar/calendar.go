package workcalendar

import (
	"time"

	"worktime/internal/domain/schedule"
)

// Calendar classifies dates as working or rest days for the Hungarian labor
// calendar: national holidays plus the compensatory Saturdays that trade
// places with bridged rest days. Lookups never fail; a date outside both
// tables falls back to plain weekday logic.
type Calendar struct {
	holidays map[string]string
	workdays map[string]string
}

func New(holidays, workdays map[string]string) *Calendar {
	if holidays == nil {
		holidays = map[string]string{}
	}
	if workdays == nil {
		workdays = map[string]string{}
	}
	return &Calendar{holidays: holidays, workdays: workdays}
}

// FromOverrides builds a calendar from the persisted override collection,
// making the record-based backend interchangeable with the static tables.
func FromOverrides(overrides []schedule.CalendarOverride) *Calendar {
	calendar := New(nil, nil)
	for _, override := range overrides {
		key := override.Date.Format("2006-01-02")
		switch override.Kind {
		case schedule.OverrideWorkday:
			calendar.workdays[key] = override.Comment
		case schedule.OverrideRestday:
			calendar.holidays[key] = override.Comment
		}
	}
	return calendar
}

// WithOverrides layers persisted overrides on top of the receiver without
// mutating it. An override for a date replaces whatever the base tables say
// about that date.
func (c *Calendar) WithOverrides(overrides []schedule.CalendarOverride) *Calendar {
	merged := New(nil, nil)
	for key, name := range c.holidays {
		merged.holidays[key] = name
	}
	for key, name := range c.workdays {
		merged.workdays[key] = name
	}
	for _, override := range overrides {
		key := override.Date.Format("2006-01-02")
		switch override.Kind {
		case schedule.OverrideWorkday:
			merged.workdays[key] = override.Comment
			delete(merged.holidays, key)
		case schedule.OverrideRestday:
			merged.holidays[key] = override.Comment
			delete(merged.workdays, key)
		}
	}
	return merged
}

// IsRestDay reports whether the date is a non-working day. A compensatory
// workday wins over everything else, then holidays, then the weekend rule.
func (c *Calendar) IsRestDay(date time.Time) bool {
	key := date.Format("2006-01-02")
	if _, ok := c.workdays[key]; ok {
		return false
	}
	if _, ok := c.holidays[key]; ok {
		return true
	}
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// HolidayName returns the display name for a holiday date. Holidays recorded
// without a name report false; there is nothing to display for them.
func (c *Calendar) HolidayName(date time.Time) (string, bool) {
	name, ok := c.holidays[date.Format("2006-01-02")]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
