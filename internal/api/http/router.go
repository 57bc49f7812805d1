package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/http/handlers"
	"github.com/spec-kit/employee-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Employees      *handlers.EmployeesHandler
	AuthMiddleware *auth.AuthMiddleware
	LoginLimiter   fiber.Handler
}

// RegisterRoutes wires HTTP routes. Signup, login, list and get are
// public; mutations sit behind the auth gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	employees := app.Group("/api/employees")
	employees.Get("/", cfg.Employees.List)
	employees.Post("/signup", cfg.Employees.Signup)
	if cfg.LoginLimiter != nil {
		employees.Post("/login", cfg.LoginLimiter, cfg.Employees.Login)
	} else {
		employees.Post("/login", cfg.Employees.Login)
	}

	// Public fetch registered ahead of the protected group so its
	// middleware never intercepts GET requests.
	employees.Get("/:id", cfg.Employees.Get)

	protected := employees.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	protected.Post("/password/change", cfg.Employees.ChangePassword)
	protected.Patch("/:id", cfg.Employees.Update)
	protected.Delete("/:id", cfg.Employees.Delete)
}
