package workcalendar

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type calendarFile struct {
	Holidays []dayEntry `yaml:"holidays"`
	Workdays []dayEntry `yaml:"workdays"`
}

type dayEntry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

// Load reads a year-table file so the calendar can be refreshed without a
// rebuild when the yearly decree is published.
func Load(path string) (*Calendar, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file calendarFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse calendar file %s: %w", path, err)
	}

	holidays := make(map[string]string, len(file.Holidays))
	for _, entry := range file.Holidays {
		if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
			return nil, fmt.Errorf("calendar file %s: bad holiday date %q", path, entry.Date)
		}
		holidays[entry.Date] = entry.Name
	}

	workdays := make(map[string]string, len(file.Workdays))
	for _, entry := range file.Workdays {
		if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
			return nil, fmt.Errorf("calendar file %s: bad workday date %q", path, entry.Date)
		}
		workdays[entry.Date] = entry.Name
	}

	return New(holidays, workdays), nil
}
