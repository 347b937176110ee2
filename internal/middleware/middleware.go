package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Dwieght/deer-sub000/internal/auth"
	"github.com/Dwieght/deer-sub000/internal/config"
	handlers "github.com/Dwieght/deer-sub000/internal/handler"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const claimsKey contextKey = "sessionClaims"

// ClaimsFromContext returns the session claims resolved by SessionAuth,
// nil on unauthenticated requests.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// SessionAuth verifies the session cookie and stores the claims in the
// request context. API callers get a 401; page flows are redirected to
// the login screen instead (same check, friendlier outcome).
func SessionAuth(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.TokenFromRequest(r)

			claims := auth.VerifyToken(cfg.SessionSecret, token)
			if claims == nil {
				if strings.HasPrefix(r.URL.Path, "/api/") {
					handlers.WriteError(w, "authentication required", http.StatusUnauthorized)
				} else {
					http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
				}
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
