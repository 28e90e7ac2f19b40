package schedulehandler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"worktime/internal/domain/auth"
	"worktime/internal/domain/schedule"
	"worktime/internal/transport/http/api"
	"worktime/internal/transport/http/middleware"
	"worktime/internal/transport/http/shared"
)

type Handler struct {
	Store       *schedule.Store
	Idem        *middleware.IdempotencyStore
	StrictClock bool
}

func NewHandler(db *pgxpool.Pool, strictClock bool) *Handler {
	return &Handler{
		Store:       schedule.NewStore(db),
		Idem:        middleware.NewIdempotencyStore(db),
		StrictClock: strictClock,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleHR)).
		Get("/schedule/roster", h.handleRoster)

	r.Route("/schedule/{employeeID}", func(r chi.Router) {
		r.Get("/shifts", h.handleListShifts)
		r.Get("/shifts/{date}", h.handleGetShift)
		r.Put("/shifts", h.handleUpsertShift)
		r.Delete("/shifts/{date}", h.handleDeleteShift)

		r.Get("/overtimes", h.handleListOvertimes)
		r.Post("/overtimes", h.handleCreateOvertime)
		r.Put("/overtimes/{date}", h.handleReplaceOvertimes)
		r.Delete("/overtimes/{overtimeID}", h.handleDeleteOvertime)
	})
}

// canEdit allows admins to manage any roster and everyone else only their own.
func canEdit(userCtx auth.UserContext, employeeID string) bool {
	return userCtx.Role == auth.RoleAdmin || userCtx.UserID == employeeID
}

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request, employeeID, reqID string) bool {
	userCtx, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return false
	}
	if !canEdit(userCtx, employeeID) {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot modify another employee's schedule", reqID)
		return false
	}
	return true
}

func rangeParams(r *http.Request, v *shared.Validator) (time.Time, time.Time) {
	from, _ := v.Date("from", r.URL.Query().Get("from"))
	to, _ := v.Date("to", r.URL.Query().Get("to"))
	v.DateOrder("from", from, "to", to)
	return from, to
}

func (h *Handler) handleListShifts(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	v := shared.NewValidator()
	from, to := rangeParams(r, v)
	if v.Reject(w, reqID) {
		return
	}

	shifts, err := h.Store.ListShifts(r.Context(), employeeID, from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not list shifts", reqID)
		return
	}
	api.Success(w, shifts, reqID)
}

// handleRoster lists every employee's shifts over a range, for the planning
// board.
func (h *Handler) handleRoster(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	from, to := rangeParams(r, v)
	if v.Reject(w, reqID) {
		return
	}

	shifts, err := h.Store.ListShiftsForRange(r.Context(), from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not list shifts", reqID)
		return
	}
	api.Success(w, shifts, reqID)
}

func (h *Handler) handleGetShift(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	date, err := shared.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid date", reqID)
		return
	}

	shift, err := h.Store.GetShift(r.Context(), date, employeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "shift not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not load shift", reqID)
		return
	}
	api.Success(w, shift, reqID)
}

type shiftPayload struct {
	Date      string `json:"date"`
	Kind      string `json:"kind"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (h *Handler) handleUpsertShift(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	if !h.authorize(w, r, employeeID, reqID) {
		return
	}

	var payload shiftPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", reqID)
		return
	}

	v := shared.NewValidator()
	date, _ := v.Date("date", payload.Date)
	v.Enum("kind", payload.Kind, schedule.ShiftKinds, "unknown shift kind")
	switch payload.Kind {
	case schedule.ShiftVacation, schedule.ShiftSick:
		// Full-day absences carry no clock times.
	default:
		v.Clock("startTime", payload.StartTime, h.StrictClock)
		v.Clock("endTime", payload.EndTime, h.StrictClock)
	}
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.UpsertShift(r.Context(), schedule.ShiftEntry{
		EmployeeID: employeeID,
		Date:       date,
		Kind:       payload.Kind,
		StartTime:  payload.StartTime,
		EndTime:    payload.EndTime,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not save shift", reqID)
		return
	}
	api.Success(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleDeleteShift(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	if !h.authorize(w, r, employeeID, reqID) {
		return
	}

	date, err := shared.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid date", reqID)
		return
	}

	if err := h.Store.DeleteShift(r.Context(), date, employeeID); err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "shift not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not delete shift", reqID)
		return
	}
	api.Success(w, map[string]string{"date": date.Format("2006-01-02")}, reqID)
}

func (h *Handler) handleListOvertimes(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	v := shared.NewValidator()
	from, to := rangeParams(r, v)
	if v.Reject(w, reqID) {
		return
	}

	overtimes, err := h.Store.ListOvertimes(r.Context(), employeeID, from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not list overtime entries", reqID)
		return
	}
	api.Success(w, overtimes, reqID)
}

type overtimePayload struct {
	Date      string `json:"date"`
	Kind      string `json:"kind"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Comment   string `json:"comment"`
}

func (h *Handler) validateOvertime(v *shared.Validator, payload overtimePayload) time.Time {
	date, _ := v.Date("date", payload.Date)
	h.validateOvertimeFields(v, payload)
	return date
}

// validateOvertimeFields checks everything but the date, which the bulk
// replace path takes from the URL instead of each payload.
func (h *Handler) validateOvertimeFields(v *shared.Validator, payload overtimePayload) {
	v.Enum("kind", payload.Kind, schedule.OvertimeKinds, "unknown overtime kind")
	v.Clock("startTime", payload.StartTime, h.StrictClock)
	v.Clock("endTime", payload.EndTime, h.StrictClock)
	if payload.Kind == schedule.OvertimeTicket {
		v.Required("comment", payload.Comment, "ticket entries need a ticket reference")
	}
}

func (h *Handler) handleCreateOvertime(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	if !h.authorize(w, r, employeeID, reqID) {
		return
	}

	var payload overtimePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", reqID)
		return
	}

	v := shared.NewValidator()
	date := h.validateOvertime(v, payload)
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreateOvertime(r.Context(), schedule.OvertimeEntry{
		EmployeeID: employeeID,
		Date:       date,
		Kind:       payload.Kind,
		StartTime:  payload.StartTime,
		EndTime:    payload.EndTime,
		Comment:    payload.Comment,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not save overtime entry", reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

// handleReplaceOvertimes swaps out every overtime entry recorded for the day
// in one transaction, so an editor saving a day never leaves stale rows. An
// Idempotency-Key header makes retries replay the original outcome.
func (h *Handler) handleReplaceOvertimes(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	if !h.authorize(w, r, employeeID, reqID) {
		return
	}

	date, err := shared.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid date", reqID)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "could not read request body", reqID)
		return
	}
	var payloads []overtimePayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", reqID)
		return
	}

	v := shared.NewValidator()
	entries := make([]schedule.OvertimeEntry, 0, len(payloads))
	for _, payload := range payloads {
		h.validateOvertimeFields(v, payload)
		entries = append(entries, schedule.OvertimeEntry{
			EmployeeID: employeeID,
			Date:       date,
			Kind:       payload.Kind,
			StartTime:  payload.StartTime,
			EndTime:    payload.EndTime,
			Comment:    payload.Comment,
		})
	}
	if v.Reject(w, reqID) {
		return
	}

	idemKey := r.Header.Get("Idempotency-Key")
	userCtx, _ := middleware.GetUser(r.Context())
	endpoint := "schedule.replace-overtimes:" + employeeID + ":" + date.Format("2006-01-02")
	requestHash := middleware.RequestHash(body)

	if idemKey != "" {
		stored, replayed, err := h.Idem.Check(r.Context(), userCtx.UserID, endpoint, idemKey, requestHash)
		if err != nil {
			if errors.Is(err, middleware.ErrIdempotencyConflict) {
				api.Fail(w, http.StatusConflict, "idempotency_conflict", "idempotency key was used with a different payload", reqID)
				return
			}
			api.Fail(w, http.StatusInternalServerError, "db_error", "could not check idempotency key", reqID)
			return
		}
		if replayed {
			api.Success(w, stored, reqID)
			return
		}
	}

	if err := h.Store.ReplaceOvertimes(r.Context(), date, employeeID, entries); err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not replace overtime entries", reqID)
		return
	}

	result := map[string]any{"date": date.Format("2006-01-02"), "count": len(entries)}
	if idemKey != "" {
		response, err := json.Marshal(result)
		if err == nil {
			err = h.Idem.Save(r.Context(), userCtx.UserID, endpoint, idemKey, requestHash, response)
		}
		if err != nil {
			slog.Warn("could not record idempotency key", "err", err, "endpoint", endpoint)
		}
	}
	api.Success(w, result, reqID)
}

func (h *Handler) handleDeleteOvertime(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	if !h.authorize(w, r, employeeID, reqID) {
		return
	}

	if err := h.Store.DeleteOvertime(r.Context(), chi.URLParam(r, "overtimeID")); err != nil {
		if errors.Is(err, schedule.ErrOvertimeNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "overtime entry not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not delete overtime entry", reqID)
		return
	}
	api.Success(w, map[string]string{"id": chi.URLParam(r, "overtimeID")}, reqID)
}
