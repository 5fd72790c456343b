package middleware

import (
	"net/http"

	"shelternet/internal/domain/entity"
	"shelternet/pkg/response"
)

// RequireRole creates a middleware that checks if the user holds any of
// the required roles. Roles are read from context (set by AuthMiddleware
// from JWT claims); usecases re-check against the store, this only
// prunes obviously unauthorized requests early.
func RequireRole(allowedRoles ...entity.RoleName) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roles, ok := GetUserRolesFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, role := range roles {
				for _, allowedRole := range allowedRoles {
					if role == string(allowedRole) {
						allowed = true
						break
					}
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
