package middleware

import (
	"net/http"

	"go-consult-intake/pkg/response"
)

// RequireAdmin gates administrative endpoints on the is_admin flag carried in
// the JWT claims (set by AuthMiddleware).
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isAdmin, ok := GetIsAdminFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Role information not found")
			return
		}
		if !isAdmin {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}
		next.ServeHTTP(w, r)
	})
}
