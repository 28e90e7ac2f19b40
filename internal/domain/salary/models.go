package salary

// Stats is the aggregate produced for one employee over one accounting run.
// It is recomputed from scratch on every invocation and never mutated after.
type Stats struct {
	ShiftAllowanceMins int `json:"shiftAllowanceMins"`
	StandbyMins        int `json:"standbyMins"`
	WeekdayOtMins      int `json:"weekdayOtMins"`
	RestDayOtMins      int `json:"restDayOtMins"`
	// NightStandbyWorkMins is reserved for night work performed during
	// standby. No accumulation path populates it yet; it stays zero.
	NightStandbyWorkMins int `json:"nightStandbyWorkMins"`
	VacationDays         int `json:"vacationDays"`
	SickDays             int `json:"sickDays"`
}

type Financials struct {
	ShiftAllowancePay float64 `json:"shiftAllowancePay"`
	StandbyPay        float64 `json:"standbyPay"`
	WeekdayOtPay      float64 `json:"weekdayOtPay"`
	RestDayOtPay      float64 `json:"restDayOtPay"`
}
