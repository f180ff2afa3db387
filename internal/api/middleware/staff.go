package middleware

import (
	"net/http"

	"github.com/xsalon/scheduling-service/internal/api/handlers"
)

// RequireStaff rejects requests whose authenticated role is not staff or
// admin. Must run after Auth.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsStaff(r.Context()) {
			handlers.RespondForbidden(w, "staff role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
