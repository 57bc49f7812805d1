package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

const minPasswordLength = 6

// EmployeesHandler exposes the employee CRUD and auth endpoints.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employeeService}
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	employees, err := h.employees.List(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp = append(resp, employeeResponse(&employees[i]))
	}
	return c.JSON(fiber.Map{"employees": resp})
}

// Signup handles POST /api/employees/signup.
func (h *EmployeesHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" ||
		req.Designation == "" || req.Role == "" || req.Address == "" {
		return apperrors.NewValidationError("name, email, password, designation, role and address required", nil)
	}
	if len(req.Password) < minPasswordLength {
		return apperrors.NewValidationError("password must be at least 6 characters", nil)
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return apperrors.NewValidationError("role must be one of admin, manager, staff", nil)
	}

	emp, token, exp, err := h.employees.Signup(c.UserContext(), service.SignupInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Designation: req.Designation,
		Role:        role,
		Address:     req.Address,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(signedResponse(emp, token, exp))
}

// Login handles POST /api/employees/login.
func (h *EmployeesHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	emp, token, exp, err := h.employees.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(signedResponse(emp, token, exp))
}

// Get handles GET /api/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	emp, err := h.employees.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// Update handles PATCH /api/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.UpdateInput{
		Name:        req.Name,
		Designation: req.Designation,
		Address:     req.Address,
	}
	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			return apperrors.NewValidationError("role must be one of admin, manager, staff", nil)
		}
		input.Role = &role
	}

	emp, err := h.employees.Update(c.UserContext(), *principal, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	id := c.Params("id")
	if err := h.employees.Delete(c.UserContext(), *principal, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "deleted", "empId": id})
}

// ChangePassword handles POST /api/employees/password/change.
func (h *EmployeesHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("current and new password required", nil)
	}
	if len(req.NewPassword) < minPasswordLength {
		return apperrors.NewValidationError("password must be at least 6 characters", nil)
	}

	if err := h.employees.ChangePassword(c.UserContext(), *principal, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "password_changed"})
}

func employeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		EmpID:       emp.ID,
		Name:        emp.Name,
		Email:       emp.Email,
		Designation: emp.Designation,
		Role:        string(emp.Role),
		Address:     emp.Address,
	}
}

func signedResponse(emp *domain.Employee, token string, exp time.Time) fiber.Map {
	return fiber.Map{
		"empId":       emp.ID,
		"name":        emp.Name,
		"email":       emp.Email,
		"designation": emp.Designation,
		"role":        string(emp.Role),
		"address":     emp.Address,
		"token":       token,
		"expires_at":  exp,
	}
}
