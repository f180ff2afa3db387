package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"

	// HeaderUserID carries the authenticated customer id set by the gateway.
	HeaderUserID = "X-User-ID"

	// HeaderUserRole carries the authenticated role set by the gateway.
	HeaderUserRole = "X-User-Role"

	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Auth requires a valid X-User-ID header and stores the id and role in the
// request context. Authentication itself happens upstream at the gateway.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, r.Header.Get(HeaderUserRole))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user id from the context.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// IsStaff reports whether the authenticated user holds a staff role.
func IsStaff(ctx context.Context) bool {
	role, _ := ctx.Value(userRoleKey).(string)
	return role == RoleStaff || role == RoleAdmin
}
