package salaryhandler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"worktime/internal/domain/auth"
	"worktime/internal/domain/salary"
	"worktime/internal/domain/schedule"
	"worktime/internal/domain/workcalendar"
	"worktime/internal/transport/http/api"
	"worktime/internal/transport/http/middleware"
	"worktime/internal/transport/http/shared"
)

type Handler struct {
	Schedule *schedule.Store
	Users    *auth.Store
	Base     *workcalendar.Calendar
}

func NewHandler(db *pgxpool.Pool, base *workcalendar.Calendar) *Handler {
	return &Handler{Schedule: schedule.NewStore(db), Users: auth.NewStore(db), Base: base}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/salary/{employeeID}", func(r chi.Router) {
		r.Get("/stats", h.handleStats)
		r.Get("/estimate", h.handleEstimate)
	})
}

func monthParams(r *http.Request, v *shared.Validator) (int, time.Month) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		v.Add("year", "year must be a four digit number")
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		v.Add("month", "month must be between 1 and 12")
	}
	return year, time.Month(month)
}

// monthStats loads both accounting windows for the month and runs the engine
// over them. Shifts and substitution overtime follow the calendar month;
// ticket and other overtime follow the settlement window that closes on the
// 15th, so the fetch range is the union of the two.
func (h *Handler) monthStats(r *http.Request, employeeID string, year int, month time.Month) (salary.Stats, error) {
	stdStart, stdEnd := shared.MonthWindow(year, month)
	otStart, otEnd := shared.SettlementWindow(year, month)

	fetchStart := stdStart
	if otStart.Before(fetchStart) {
		fetchStart = otStart
	}
	fetchEnd := stdEnd
	if otEnd.After(fetchEnd) {
		fetchEnd = otEnd
	}

	shifts, err := h.Schedule.ListShifts(r.Context(), employeeID, stdStart, stdEnd)
	if err != nil {
		return salary.Stats{}, err
	}
	overtimes, err := h.Schedule.ListOvertimes(r.Context(), employeeID, fetchStart, fetchEnd)
	if err != nil {
		return salary.Stats{}, err
	}
	overrides, err := h.Schedule.ListOverrides(r.Context())
	if err != nil {
		return salary.Stats{}, err
	}

	engine := salary.NewEngine(h.Base.WithOverrides(overrides))
	return engine.CalculateStats(shifts, overtimes, stdStart, stdEnd, otStart, otEnd)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	v := shared.NewValidator()
	year, month := monthParams(r, v)
	if v.Reject(w, reqID) {
		return
	}

	stats, err := h.monthStats(r, employeeID, year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "calc_error", "could not calculate monthly stats", reqID)
		return
	}
	api.Success(w, stats, reqID)
}

func (h *Handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	v := shared.NewValidator()
	year, month := monthParams(r, v)
	if v.Reject(w, reqID) {
		return
	}

	user, err := h.Users.GetUser(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
		return
	}

	stats, err := h.monthStats(r, employeeID, year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "calc_error", "could not calculate monthly stats", reqID)
		return
	}

	financials := salary.CalculateFinancials(user.BaseSalary, stats)
	gross := user.BaseSalary + financials.ShiftAllowancePay + financials.StandbyPay +
		financials.WeekdayOtPay + financials.RestDayOtPay
	net := gross * (1 - salary.WithholdingRate)

	api.Success(w, map[string]any{
		"stats":      stats,
		"financials": financials,
		"baseSalary": user.BaseSalary,
		"hourlyRate": salary.HourlyRate(user.BaseSalary),
		"gross":      gross,
		"net":        net,
	}, reqID)
}
