package middleware

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"secure-notes/token"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

type ctxKey int

const userIDKey ctxKey = 0

// UserID returns the authenticated user id stored by Auth, or "" outside
// a guarded handler.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// Auth guards handlers that need an identity. The token comes from the
// session cookie; anything short of a valid one redirects to /login. Page
// and API routes share this guard, so unauthenticated API calls redirect
// instead of getting a 401 body.
func Auth(tokens *token.Service, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			userID, err := tokens.Validate(cookie.Value)
			if err != nil {
				// Expired vs malformed only matters for the logs; the
				// caller re-authenticates either way.
				if errors.Is(err, token.ErrExpired) {
					log.Debug("session token expired", zap.String("path", r.URL.Path))
				} else {
					log.Warn("invalid session token", zap.String("path", r.URL.Path))
				}
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
		})
	}
}
