package schedule

import "time"

type ShiftEntry struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Date       time.Time `json:"date"`
	Kind       string    `json:"kind"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OvertimeEntry struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Date       time.Time `json:"date"`
	Kind       string    `json:"kind"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CalendarOverride struct {
	Date    time.Time `json:"date"`
	Kind    string    `json:"kind"`
	Comment string    `json:"comment,omitempty"`
}
