package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"worktime/internal/domain/auth"
	"worktime/internal/transport/http/api"
	"worktime/internal/transport/http/middleware"
	"worktime/internal/transport/http/shared"
)

type Handler struct {
	Store     *auth.Store
	JWTSecret string
	TokenTTL  time.Duration
}

func NewHandler(db *pgxpool.Pool, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{Store: auth.NewStore(db), JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

// RegisterProtectedRoutes mounts the user administration routes. Login is
// wired separately because it must sit outside the auth middleware.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.With(middleware.RequireRole(auth.RoleAdmin)).Get("/", h.handleListUsers)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Post("/", h.handleCreateUser)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Put("/{userID}/role", h.handleUpdateRole)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Delete("/{userID}", h.handleDeleteUser)
		r.Put("/{userID}/salary", h.handleUpdateSalary)
		r.Get("/me", h.handleMe)
	})
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", reqID)
		return
	}

	user, passwordHash, err := h.Store.FindByUsername(r.Context(), strings.TrimSpace(payload.Username))
	if err != nil {
		// Same response for unknown user and bad password.
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", reqID)
		return
	}
	if err := auth.CheckPassword(passwordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", reqID)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "could not issue token", reqID)
		return
	}

	api.Success(w, map[string]any{"token": token, "user": user}, reqID)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	userCtx, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	user, err := h.Store.GetUser(r.Context(), userCtx.UserID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "user not found", reqID)
		return
	}
	api.Success(w, user, reqID)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not list users", reqID)
		return
	}
	api.Success(w, users, reqID)
}

type createUserPayload struct {
	Username   string  `json:"username"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Password   string  `json:"password"`
	BaseSalary float64 `json:"baseSalary"`
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload createUserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("username", payload.Username, "username is required")
	v.Required("name", payload.Name, "name is required")
	v.Enum("role", payload.Role, auth.Roles, "role must be admin, dispatcher or hr")
	if len(payload.Password) < 8 {
		v.Add("password", "password must be at least 8 characters")
	}
	if v.Reject(w, reqID) {
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "hash_error", "could not hash password", reqID)
		return
	}

	id, err := h.Store.CreateUser(r.Context(), strings.TrimSpace(payload.Username), strings.TrimSpace(payload.Name), payload.Role, hash, payload.BaseSalary)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not create user", reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

type rolePayload struct {
	Role string `json:"role"`
}

func (h *Handler) handleUpdateRole(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	userID := chi.URLParam(r, "userID")

	var payload rolePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("role", payload.Role, "role is required")
	v.Enum("role", payload.Role, auth.Roles, "role must be admin, dispatcher or hr")
	if v.Reject(w, reqID) {
		return
	}

	if err := h.Store.UpdateRole(r.Context(), userID, payload.Role); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "user not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not update role", reqID)
		return
	}
	api.Success(w, map[string]string{"id": userID, "role": payload.Role}, reqID)
}

type salaryPayload struct {
	BaseSalary float64 `json:"baseSalary"`
}

// handleUpdateSalary lets an admin set anyone's base salary and every other
// user set only their own.
func (h *Handler) handleUpdateSalary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	userID := chi.URLParam(r, "userID")

	userCtx, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}
	if userCtx.Role != auth.RoleAdmin && userCtx.UserID != userID {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot update another user's salary", reqID)
		return
	}

	var payload salaryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", reqID)
		return
	}
	if payload.BaseSalary < 0 {
		api.Fail(w, http.StatusBadRequest, "bad_request", "base salary must not be negative", reqID)
		return
	}

	if err := h.Store.UpdateBaseSalary(r.Context(), userID, payload.BaseSalary); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "user not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not update salary", reqID)
		return
	}
	api.Success(w, map[string]any{"id": userID, "baseSalary": payload.BaseSalary}, reqID)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	userID := chi.URLParam(r, "userID")

	if err := h.Store.DeleteUser(r.Context(), userID); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "user not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "db_error", "could not delete user", reqID)
		return
	}
	api.Success(w, map[string]string{"id": userID}, reqID)
}
