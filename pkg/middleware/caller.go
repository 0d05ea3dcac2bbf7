package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// UserIDHeader carries the authenticated caller, set by the API gateway
const UserIDHeader = "X-User-Id"

type contextKey string

const userIDKey contextKey = "user_id"

// CallerMiddleware reads the gateway's X-User-Id header into the request
// context. Requests without a valid header pass through anonymously.
func CallerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get(UserIDHeader); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
				r = r.WithContext(WithUserID(r.Context(), uint(id)))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireCaller rejects requests that carry no caller identity
func RequireCaller(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserIDFromContext(r.Context()); !ok {
			RespondError(w, http.StatusUnauthorized, "X-User-Id header required")
			return
		}
		next(w, r)
	}
}

// WithUserID returns a context carrying the caller's user id
func WithUserID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext returns the caller's user id, if any
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey).(uint)
	return id, ok
}
