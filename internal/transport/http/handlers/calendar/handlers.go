package calendarhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"worktime/internal/domain/auth"
	"worktime/internal/domain/schedule"
	"worktime/internal/domain/workcalendar"
	"worktime/internal/transport/http/api"
	"worktime/internal/transport/http/middleware"
	"worktime/internal/transport/http/shared"
)

type Handler struct {
	Store *schedule.Store
	Base  *workcalendar.Calendar
}

func NewHandler(db *pgxpool.Pool, base *workcalendar.Calendar) *Handler {
	return &Handler{Store: schedule.NewStore(db), Base: base}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/calendar", func(r chi.Router) {
		r.Get("/classify", h.handleClassify)
		r.Get("/overrides", h.handleListOverrides)
		r.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleHR)).Put("/overrides", h.handleUpsertOverride)
		r.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleHR)).Delete("/overrides/{date}", h.handleDeleteOverride)
	})
}

// calendar returns the static tables layered with whatever overrides are
// persisted, so ad-hoc decisions take effect without a redeploy.
func (h *Handler) calendar(r *http.Request) (*workcalendar.Calendar, error) {
	overrides, err := h.Store.ListOverrides(r.Context())
	if err != nil {
		return nil, err
	}
	return h.Base.WithOverrides(overrides), nil
}

func (h *Handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	date, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid or missing date", reqID)
		return
	}

	calendar, err := h.calendar(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not load calendar overrides", reqID)
		return
	}

	result := map[string]any{
		"date":    date.Format("2006-01-02"),
		"restDay": calendar.IsRestDay(date),
	}
	if name, ok := calendar.HolidayName(date); ok {
		result["holidayName"] = name
	}
	api.Success(w, result, reqID)
}

func (h *Handler) handleListOverrides(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	overrides, err := h.Store.ListOverrides(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not list overrides", reqID)
		return
	}
	api.Success(w, overrides, reqID)
}

type overridePayload struct {
	Date    string `json:"date"`
	Kind    string `json:"kind"`
	Comment string `json:"comment"`
}

func (h *Handler) handleUpsertOverride(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload overridePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", reqID)
		return
	}

	v := shared.NewValidator()
	date, _ := v.Date("date", payload.Date)
	v.Enum("kind", payload.Kind, schedule.OverrideKinds, "kind must be workday or restday")
	if v.Reject(w, reqID) {
		return
	}

	err := h.Store.UpsertOverride(r.Context(), schedule.CalendarOverride{
		Date:    date,
		Kind:    payload.Kind,
		Comment: payload.Comment,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not save override", reqID)
		return
	}
	api.Success(w, map[string]string{"date": date.Format("2006-01-02"), "kind": payload.Kind}, reqID)
}

func (h *Handler) handleDeleteOverride(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	date, err := shared.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid date", reqID)
		return
	}

	if err := h.Store.DeleteOverride(r.Context(), date); err != nil {
		if errors.Is(err, schedule.ErrOverrideNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "override not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not delete override", reqID)
		return
	}
	api.Success(w, map[string]string{"date": date.Format("2006-01-02")}, reqID)
}
