package reportshandler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"worktime/internal/domain/auth"
	"worktime/internal/domain/reports"
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
	r.Get("/reports/{employeeID}/accounting", h.handleAccounting)
}

// handleAccounting renders the monthly accounting sheet as a PDF or XLSX
// download. The extra query parameter force-includes overtime entries by ID
// even when they fall outside both accounting windows, for corrections
// carried over from a previous sheet.
func (h *Handler) handleAccounting(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	v := shared.NewValidator()
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		v.Add("year", "year must be a four digit number")
	}
	monthNum, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		v.Add("month", "month must be between 1 and 12")
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "pdf"
	}
	v.Enum("format", format, []string{"pdf", "xlsx"}, "format must be pdf or xlsx")
	if v.Reject(w, reqID) {
		return
	}
	month := time.Month(monthNum)

	var extraIDs []string
	if raw := r.URL.Query().Get("extra"); raw != "" {
		extraIDs = strings.Split(raw, ",")
	}

	user, err := h.Users.GetUser(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
		return
	}

	stdStart, stdEnd := shared.MonthWindow(year, month)
	otStart, otEnd := shared.SettlementWindow(year, month)

	fetchStart := otStart
	if stdStart.Before(fetchStart) {
		fetchStart = stdStart
	}
	fetchEnd := stdEnd
	if otEnd.After(fetchEnd) {
		fetchEnd = otEnd
	}

	shifts, err := h.Schedule.ListShifts(r.Context(), employeeID, stdStart, stdEnd)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not load shifts", reqID)
		return
	}
	overtimes, err := h.Schedule.ListOvertimes(r.Context(), employeeID, fetchStart, fetchEnd)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not load overtime entries", reqID)
		return
	}
	overrides, err := h.Schedule.ListOverrides(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not load calendar overrides", reqID)
		return
	}

	engine := salary.NewEngine(h.Base.WithOverrides(overrides))
	stats, err := engine.CalculateStats(shifts, overtimes, stdStart, stdEnd, otStart, otEnd)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "calc_error", "could not calculate monthly stats", reqID)
		return
	}

	accounting := reports.BuildAccounting(user.Name, user.Role, stats, overtimes, stdStart, stdEnd, otStart, otEnd, extraIDs)

	var (
		body        []byte
		contentType string
		extension   string
	)
	switch format {
	case "xlsx":
		body, err = reports.RenderXLSX(accounting)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		extension = "xlsx"
	default:
		body, err = reports.RenderPDF(accounting)
		contentType = "application/pdf"
		extension = "pdf"
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "render_error", "could not render report", reqID)
		return
	}

	filename := fmt.Sprintf("elszamolas-%d-%02d.%s", year, monthNum, extension)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
