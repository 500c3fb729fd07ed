package middleware

import (
	"net/http"

	"vidaplus-api/internal/domain/entity"
	"vidaplus-api/pkg/response"
)

// RequireRole checks the role carried in the JWT claims against the allowed
// set. A wrong or missing role means the credential itself does not grant this
// route, so the rejection is Unauthorized; Forbidden is reserved for ownership
// checks inside the usecases.
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Unauthorized(w, "Your role does not grant access to this resource")
		})
	}
}

// RequireAdministrator is a convenience middleware for administrator-only endpoints
func RequireAdministrator(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdministrator)(next)
}

// RequireProfessional is a convenience middleware for professional-only endpoints
func RequireProfessional(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDProfessional)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDPatient)(next)
}

// RequireAdministratorOrProfessional allows either staff role
func RequireAdministratorOrProfessional(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdministrator, entity.RoleIDProfessional)(next)
}
