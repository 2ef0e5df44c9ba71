package middleware

import (
	"context"
	"net/http"
	"strings"
)

// UserIDHeader carries the caller's user id. Authentication happens upstream;
// this service trusts the header as given.
const UserIDHeader = "X-User-ID"

type userKey struct{}

// WithUser returns a copy of ctx carrying userID.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// UserFromContext returns the user id stored by RequireUser.
func UserFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userKey{}).(string)
	return id, ok && id != ""
}

// RequireUser stores the UserIDHeader value in the request context. Requests
// without one are answered by onMissing and never reach next.
func RequireUser(onMissing http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if id == "" {
				onMissing.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), id)))
		})
	}
}
