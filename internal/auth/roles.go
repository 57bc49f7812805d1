package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// CanMutate reports whether the role may update or delete employee
// records. Only admins hold mutation privileges.
func CanMutate(role domain.Role) bool {
	return role == domain.RoleAdmin
}

// RequireAuthenticated ensures a caller passed the auth middleware,
// regardless of role. Role-level policy is enforced after the target
// record is resolved, not here.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
