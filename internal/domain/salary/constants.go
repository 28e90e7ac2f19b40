package salary

const (
	// MonthlyHoursDivisor is the statutory monthly-hours basis used to derive
	// an hourly rate from the base salary.
	MonthlyHoursDivisor = 174

	ShiftAllowanceRate = 0.30
	StandbyRate        = 0.20
	WeekdayOtRate      = 1.50
	RestDayOtRate      = 2.00

	// WithholdingRate approximates the statutory deductions (personal income
	// tax and social contributions) applied when estimating net pay.
	WithholdingRate = 0.335
)

// Premium bands for the shift allowance, in absolute minutes. The night band
// runs to 30:00, i.e. 06:00 of the following day for a midnight-wrapped shift.
const (
	eveningBandStart = 18 * 60
	nightBandEnd     = 30 * 60
	morningBandEnd   = 6 * 60
)
