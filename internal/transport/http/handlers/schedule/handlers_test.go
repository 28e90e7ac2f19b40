package schedulehandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"worktime/internal/domain/auth"
	"worktime/internal/transport/http/middleware"
)

const testSecret = "test-secret"

// newTestRouter mounts the handler behind the real auth middleware so the
// requests exercise the same chain as production. Validation failures return
// before any store access, so no database is needed.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(nil, true)
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Auth(testSecret))
	h.RegisterRoutes(router)
	return router
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, auth.Claims{
		UserID: "admin-1",
		Name:   "Admin",
		Role:   auth.RoleAdmin,
	}, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error == nil {
		t.Fatal("expected an error envelope")
	}
	return envelope.Error.Code
}

func TestReplaceOvertimesRejectsTicketWithoutReference(t *testing.T) {
	router := newTestRouter(t)

	body := `[{"kind":"ticket","startTime":"10:00","endTime":"11:00"}]`
	req := httptest.NewRequest(http.MethodPut, "/schedule/admin-1/overtimes/2025-06-10", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if code := decodeError(t, rec); code != "validation_error" {
		t.Fatalf("error code = %q, want validation_error", code)
	}
}

func TestReplaceOvertimesRejectsUnknownKindAndBadClock(t *testing.T) {
	router := newTestRouter(t)

	body := `[{"kind":"mystery","startTime":"25:00","endTime":"11:00"}]`
	req := httptest.NewRequest(http.MethodPut, "/schedule/admin-1/overtimes/2025-06-10", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if code := decodeError(t, rec); code != "validation_error" {
		t.Fatalf("error code = %q, want validation_error", code)
	}
}

func TestCreateOvertimeRejectsTicketWithoutReference(t *testing.T) {
	router := newTestRouter(t)

	body := `{"date":"2025-06-10","kind":"ticket","startTime":"10:00","endTime":"11:00"}`
	req := httptest.NewRequest(http.MethodPost, "/schedule/admin-1/overtimes", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if code := decodeError(t, rec); code != "validation_error" {
		t.Fatalf("error code = %q, want validation_error", code)
	}
}

func TestReplaceOvertimesRequiresOwnRoster(t *testing.T) {
	router := newTestRouter(t)

	token, err := auth.GenerateToken(testSecret, auth.Claims{
		UserID: "user-2",
		Name:   "Dispatcher",
		Role:   auth.RoleDispatcher,
	}, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/schedule/someone-else/overtimes/2025-06-10", strings.NewReader("[]"))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}
