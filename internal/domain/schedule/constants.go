package schedule

const (
	ShiftDay      = "day"
	ShiftEvening  = "evening"
	ShiftNight    = "night"
	ShiftStandby  = "standby"
	ShiftVacation = "vacation"
	ShiftSick     = "sick"

	OvertimeSubstitution = "substitution"
	OvertimeTicket       = "ticket"
	OvertimeOther        = "other"

	OverrideWorkday = "workday"
	OverrideRestday = "restday"
)

var ShiftKinds = []string{ShiftDay, ShiftEvening, ShiftNight, ShiftStandby, ShiftVacation, ShiftSick}

var OvertimeKinds = []string{OvertimeSubstitution, OvertimeTicket, OvertimeOther}

var OverrideKinds = []string{OverrideWorkday, OverrideRestday}
