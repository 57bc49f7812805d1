package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller, built from verified token
// claims. Role is the snapshot carried by the token; a role change takes
// effect on the next login.
type Principal struct {
	EmpID string
	Email string
	Role  domain.Role
}

// AuthMiddleware validates bearer tokens and attaches the caller identity
// to the request context.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. Missing or malformed
// headers, bad signatures, and expired tokens all short-circuit with 401.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(principalKey, &Principal{
		EmpID: claims.EmpID,
		Email: claims.Email,
		Role:  claims.Role,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
