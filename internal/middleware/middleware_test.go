package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dwieght/deer-sub000/internal/auth"
	"github.com/Dwieght/deer-sub000/internal/config"
)

func sessionTestConfig() *config.Config {
	return &config.Config{SessionSecret: "test-secret-key"}
}

func TestSessionAuth_ValidCookie(t *testing.T) {
	cfg := sessionTestConfig()

	token, err := auth.IssueToken(cfg.SessionSecret, "admin-1", "admin@example.com", time.Hour)
	require.NoError(t, err)

	var gotClaims *auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	rr := httptest.NewRecorder()

	SessionAuth(cfg)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, "admin-1", gotClaims.SubjectID)
	assert.Equal(t, "admin@example.com", gotClaims.Email)
}

func TestSessionAuth_MissingCookieOnAPIPath(t *testing.T) {
	cfg := sessionTestConfig()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rr := httptest.NewRecorder()

	SessionAuth(cfg)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "authentication required")
}

func TestSessionAuth_MissingCookieOnPagePath(t *testing.T) {
	cfg := sessionTestConfig()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rr := httptest.NewRecorder()

	SessionAuth(cfg)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/admin/login", rr.Header().Get("Location"))
}

func TestSessionAuth_TamperedToken(t *testing.T) {
	cfg := sessionTestConfig()

	token, err := auth.IssueToken(cfg.SessionSecret, "admin-1", "admin@example.com", time.Hour)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token + "x"})
	rr := httptest.NewRecorder()

	SessionAuth(cfg)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSessionAuth_ExpiredToken(t *testing.T) {
	cfg := sessionTestConfig()

	token, err := auth.IssueToken(cfg.SessionSecret, "admin-1", "admin@example.com", -time.Minute)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	rr := httptest.NewRecorder()

	SessionAuth(cfg)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must short-circuit")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/letters", nil)
	rr := httptest.NewRecorder()

	CORSMiddleware(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
