package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

func protectedApp(tm *auth.TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": de.Code})
		},
	})

	mw := auth.NewAuthMiddleware(tm)
	app.Get("/protected", mw.Handle, auth.RequireAuthenticated(), func(c *fiber.Ctx) error {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.JSON(fiber.Map{"empId": principal.EmpID, "role": string(principal.Role)})
	})
	return app
}

func TestAuthMiddlewareRejections(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, 60)
	app := protectedApp(tm)

	foreign, _, err := auth.NewTokenManager("other-secret", 60).GenerateToken(testEmployee())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no bearer prefix", header: "sometoken"},
		{name: "wrong scheme", header: "Basic abc123"},
		{name: "empty token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "wrong secret", header: "Bearer " + foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthMiddlewareAttachesPrincipal(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, 60)
	app := protectedApp(tm)

	token, _, err := tm.GenerateToken(testEmployee())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCanMutate(t *testing.T) {
	assert.True(t, auth.CanMutate(domain.RoleAdmin))
	assert.False(t, auth.CanMutate(domain.RoleManager))
	assert.False(t, auth.CanMutate(domain.RoleStaff))
	assert.False(t, auth.CanMutate(domain.Role("")))
}
