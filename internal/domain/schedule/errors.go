package schedule

import "errors"

var (
	ErrShiftNotFound    = errors.New("shift entry not found")
	ErrOvertimeNotFound = errors.New("overtime entry not found")
	ErrOverrideNotFound = errors.New("calendar override not found")
)
