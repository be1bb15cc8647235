package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/planventura/eventos-api/internal/auth"
	"github.com/planventura/eventos-api/internal/http/middleware"
)

const testSecret = "test-secret"

func userToken(t *testing.T, sub int64) string {
	t.Helper()
	tok, err := auth.NewSessionToken(sub, "ana@example.com", auth.KindUser, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	return tok
}

func organizerToken(t *testing.T, sub int64) string {
	t.Helper()
	tok, err := auth.NewSessionToken(sub, "Cultura Viva", auth.KindOrganizer, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	return tok
}

func TestRequireUserAllowsValidCookie(t *testing.T) {
	guard := middleware.NewSessionGuard(testSecret)

	var got *auth.Claims
	h := guard.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.SessionClaims(r)
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: userToken(t, 5)})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got == nil || got.Sub != 5 {
		t.Fatalf("claims = %+v, want sub 5", got)
	}
}

func TestRequireUserRejectsMissingToken(t *testing.T) {
	guard := middleware.NewSessionGuard(testSecret)
	h := guard.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	r := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireUserRejectsExpiredToken(t *testing.T) {
	guard := middleware.NewSessionGuard(testSecret)
	h := guard.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	expired, err := auth.NewSessionToken(5, "ana@example.com", auth.KindUser, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: expired})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

// An organizer session on a user endpoint (and the reverse) answers 401, not
// 403; the surface simply does not exist for that session.
func TestRequireUserRejectsOrganizerKind(t *testing.T) {
	guard := middleware.NewSessionGuard(testSecret)
	h := guard.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	r := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: organizerToken(t, 3)})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireOrganizerAcceptsBearerHeader(t *testing.T) {
	guard := middleware.NewSessionGuard(testSecret)
	h := guard.RequireOrganizer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/organizer-events", nil)
	r.Header.Set("Authorization", "Bearer "+organizerToken(t, 3))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestVerifyReportsSessionState(t *testing.T) {
	guard := middleware.NewSessionGuard(testSecret)

	r := httptest.NewRequest(http.MethodGet, "/auth/check", nil)
	if _, ok := guard.Verify(r); ok {
		t.Fatal("expected no session")
	}

	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: userToken(t, 5)})
	claims, ok := guard.Verify(r)
	if !ok {
		t.Fatal("expected a session")
	}
	if claims.Kind != auth.KindUser {
		t.Errorf("kind = %q", claims.Kind)
	}
}
