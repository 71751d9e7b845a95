package middleware

import (
	"net/http"

	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
	"github.com/DeepGajjar31/HealthNest/pkg/response"
)

// RequireRole gates a route on the role resolved from the access token: a pure
// predicate over context-held session state, evaluated per request.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireDoctor allows doctors and admins
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor, entity.RoleAdmin)(next)
}

// RequirePatient allows patients and admins
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient, entity.RoleAdmin)(next)
}
