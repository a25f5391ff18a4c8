package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/insightboard/insightboard-be/internal/auth"
	"github.com/insightboard/insightboard-be/internal/http/respond"
)

// AuthCookieName is the cookie checked when no Authorization header is present.
const AuthCookieName = "access_token"

type ctxKey int

const userIDKey ctxKey = iota

// UserID returns the authenticated user id attached by RequireAuth.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RequireAuth validates the bearer token from the Authorization header or the
// auth cookie and injects the resolved user id into the request context. Any
// failure short-circuits with 401 before the downstream handler runs.
func RequireAuth(tokens *auth.TokenManager, resp *respond.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				resp.Error(w, http.StatusUnauthorized, "Not authorized")
				return
			}

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				resp.Error(w, http.StatusUnauthorized, "Not authorized")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := r.Cookie(AuthCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
