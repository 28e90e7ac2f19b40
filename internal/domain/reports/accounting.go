package reports

import (
	"fmt"
	"sort"
	"time"

	"worktime/internal/domain/salary"
	"worktime/internal/domain/schedule"
)

// OvertimeRow is one line of the detailed overtime register on the monthly
// accounting document.
type OvertimeRow struct {
	Date     string `json:"date"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
	Reason   string `json:"reason"`
}

type SummaryRow struct {
	Label string `json:"label"`
	Rate  string `json:"rate"`
	Value string `json:"value"`
}

// Accounting is the fully formatted monthly accounting document, ready for a
// renderer. All duration formatting happens here; renderers only lay out.
type Accounting struct {
	Title        string       `json:"title"`
	EmployeeLine string       `json:"employeeLine"`
	Summary      []SummaryRow `json:"summary"`
	Overtimes    []OvertimeRow `json:"overtimes"`
}

var monthNames = []string{
	"január", "február", "március", "április", "május", "június",
	"július", "augusztus", "szeptember", "október", "november", "december",
}

// BuildAccounting assembles the document for one employee: the statistic
// summary block followed by the dual-window overtime register.
func BuildAccounting(employeeName, role string, stats salary.Stats, overtimes []schedule.OvertimeEntry, stdStart, stdEnd, otStart, otEnd time.Time, extraIDs []string) Accounting {
	return Accounting{
		Title:        fmt.Sprintf("Havi összesítő - %d. %s", stdStart.Year(), monthNames[stdStart.Month()-1]),
		EmployeeLine: fmt.Sprintf("Név: %s (%s)", employeeName, role),
		Summary: []SummaryRow{
			{Label: "Műszakpótlék", Rate: "30%", Value: fmt.Sprintf("%d óra", salary.RoundedHours(stats.ShiftAllowanceMins))},
			{Label: "Készenlét", Rate: "20%", Value: salary.FormatMinutes(stats.StandbyMins)},
			{Label: "Túlóra (Hétköznap)", Rate: "150%", Value: salary.FormatMinutes(stats.WeekdayOtMins)},
			{Label: "Túlóra (Pihenőnap)", Rate: "200%", Value: salary.FormatMinutes(stats.RestDayOtMins)},
			{Label: "Éjszakai munkavégzés", Rate: "-", Value: salary.FormatMinutes(stats.NightStandbyWorkMins)},
			{Label: "Szabadság", Rate: "-", Value: fmt.Sprintf("%d nap", stats.VacationDays)},
			{Label: "Betegállomány", Rate: "-", Value: fmt.Sprintf("%d nap", stats.SickDays)},
		},
		Overtimes: BuildOvertimeRows(overtimes, stdStart, stdEnd, otStart, otEnd, extraIDs),
	}
}

// BuildOvertimeRows filters and labels the overtime entries for the register.
// Substitution entries follow the calendar-month window, everything else the
// settlement window; extraIDs force-includes entries regardless of window.
func BuildOvertimeRows(overtimes []schedule.OvertimeEntry, stdStart, stdEnd, otStart, otEnd time.Time, extraIDs []string) []OvertimeRow {
	extra := make(map[string]struct{}, len(extraIDs))
	for _, id := range extraIDs {
		extra[id] = struct{}{}
	}

	rows := make([]OvertimeRow, 0, len(overtimes))
	for _, overtime := range overtimes {
		include := false
		if _, ok := extra[overtime.ID]; ok {
			include = true
		} else if overtime.Kind == schedule.OvertimeSubstitution {
			include = salary.InWindow(overtime.Date, stdStart, stdEnd)
		} else {
			include = salary.InWindow(overtime.Date, otStart, otEnd)
		}
		if !include {
			continue
		}

		rows = append(rows, OvertimeRow{
			Date:     overtime.Date.Format("2006-01-02"),
			Start:    overtime.StartTime,
			End:      overtime.EndTime,
			Duration: salary.FormatMinutes(salary.DurationMinutes(overtime.StartTime, overtime.EndTime)),
			Reason:   reasonLabel(overtime),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

func reasonLabel(overtime schedule.OvertimeEntry) string {
	switch overtime.Kind {
	case schedule.OvertimeSubstitution:
		return "Helyettesítés"
	case schedule.OvertimeTicket:
		comment := overtime.Comment
		if comment == "" {
			comment = "-"
		}
		return fmt.Sprintf("Ticket #ID:%s", comment)
	case schedule.OvertimeOther:
		if overtime.Comment != "" {
			return fmt.Sprintf("Egyéb (%s)", overtime.Comment)
		}
		return "Egyéb"
	default:
		return "Túlóra"
	}
}
