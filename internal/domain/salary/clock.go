package salary

import (
	"fmt"
	"strconv"
	"strings"
)

const FullDayMins = 24 * 60

// ParseClock parses an HH:MM clock string into minutes since midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("clock time %q out of range", clock)
	}
	return hours*60 + mins, nil
}

// TimeToMinutes is the permissive variant used inside the engine: empty or
// malformed input counts as 00:00. Strict validation happens at the input
// boundary via ParseClock.
func TimeToMinutes(clock string) int {
	mins, err := ParseClock(clock)
	if err != nil {
		return 0
	}
	return mins
}

// DurationMinutes returns the span between two clock strings, treating an end
// earlier than the start as crossing midnight. The 00:00-00:00 pair is the
// all-day standby encoding and yields a full 1440 minutes.
func DurationMinutes(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	if start == "00:00" && end == "00:00" {
		return FullDayMins
	}
	s := TimeToMinutes(start)
	e := TimeToMinutes(end)
	if e < s {
		e += FullDayMins
	}
	return e - s
}

// OverlapMinutes computes the overlap of two intervals in absolute minute
// space. Values above 1440 represent the portion of a span past midnight.
func OverlapMinutes(aStart, aEnd, bStart, bEnd int) int {
	maxStart := aStart
	if bStart > maxStart {
		maxStart = bStart
	}
	minEnd := aEnd
	if bEnd < minEnd {
		minEnd = bEnd
	}
	if minEnd <= maxStart {
		return 0
	}
	return minEnd - maxStart
}

// FormatMinutes renders a minute count as H:MM for report display.
func FormatMinutes(mins int) string {
	return fmt.Sprintf("%d:%02d", mins/60, mins%60)
}

// RoundedHours rounds minutes to whole hours. Presentation-layer only: the
// monetary computation always works on exact minutes.
func RoundedHours(mins int) int {
	return (mins + 30) / 60
}
