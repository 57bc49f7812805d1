package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

const uniqueViolationCode = "23505"

// errInvalidCredentials is shared by the unknown-email and wrong-password
// paths so callers cannot enumerate accounts.
func errInvalidCredentials() error {
	return apperrors.NewUnauthorized("invalid credentials")
}

// SignupInput carries validated signup fields.
type SignupInput struct {
	Name        string
	Email       string
	Password    string
	Designation string
	Role        domain.Role
	Address     string
}

// UpdateInput carries the mutable employee fields. Nil means unchanged;
// email and password are never updatable through this path.
type UpdateInput struct {
	Name        *string
	Designation *string
	Role        *domain.Role
	Address     *string
}

// EmployeeService coordinates signup, login and admin-gated record
// mutations.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// EmployeeDependencies encapsulates collaborator requirements.
type EmployeeDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
}

// NewEmployeeService builds the service.
func NewEmployeeService(cfg config.Config, deps EmployeeDependencies) *EmployeeService {
	return &EmployeeService{
		employees:  deps.EmployeeRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Signup creates a new employee account and issues a token for it.
// The database unique constraint is the authoritative duplicate guard;
// the pre-check only gives the common case a friendlier short-circuit.
func (s *EmployeeService) Signup(ctx context.Context, in SignupInput) (*domain.Employee, string, time.Time, error) {
	email := normalizeEmail(in.Email)

	if _, err := s.employees.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("employee already exists, try logging in", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	emp := &domain.Employee{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Designation:  in.Designation,
		Role:         in.Role,
		Address:      in.Address,
	}
	if err := s.employees.Create(ctx, emp); err != nil {
		if isUniqueViolation(err) {
			return nil, "", time.Time{}, apperrors.NewConflict("employee already exists, try logging in", nil)
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(emp)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventEmployeeSignedUp, emp.ID, events.Actor{}, events.EmployeeSignedUpPayload{
		Email: emp.Email,
		Role:  emp.Role,
	})
	return emp, token, exp, nil
}

// Login authenticates an employee by email and password.
func (s *EmployeeService) Login(ctx context.Context, email, password string) (*domain.Employee, string, time.Time, error) {
	emp, err := s.employees.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, errInvalidCredentials()
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePassword(emp.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, errInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(emp)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return emp, token, exp, nil
}

// List returns all employees.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return employees, nil
}

// Get fetches a single employee by id.
func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return emp, nil
}

// Update applies the mutable fields to an existing employee. The policy
// check runs after the target is confirmed to exist, so admins see 404 for
// unknown ids while non-admins are always denied.
func (s *EmployeeService) Update(ctx context.Context, actor auth.Principal, id string, in UpdateInput) (*domain.Employee, error) {
	emp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanMutate(actor.Role) {
		return nil, apperrors.NewForbidden("admin role required")
	}

	oldRole := emp.Role
	if in.Name != nil {
		emp.Name = *in.Name
	}
	if in.Designation != nil {
		emp.Designation = *in.Designation
	}
	if in.Role != nil {
		emp.Role = *in.Role
	}
	if in.Address != nil {
		emp.Address = *in.Address
	}

	if err := s.employees.Update(ctx, emp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventEmployeeUpdated, emp.ID, actorOf(actor), events.EmployeeUpdatedPayload{
		OldRole: oldRole,
		NewRole: emp.Role,
	})
	return emp, nil
}

// Delete permanently removes an employee record.
func (s *EmployeeService) Delete(ctx context.Context, actor auth.Principal, id string) error {
	emp, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanMutate(actor.Role) {
		return apperrors.NewForbidden("admin role required")
	}

	if err := s.employees.Delete(ctx, emp.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", nil)
		}
		return apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventEmployeeDeleted, emp.ID, actorOf(actor), events.EmployeeDeletedPayload{
		Email: emp.Email,
	})
	return nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *EmployeeService) ChangePassword(ctx context.Context, actor auth.Principal, currentPassword, newPassword string) error {
	emp, err := s.Get(ctx, actor.EmpID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(emp.PasswordHash, currentPassword); err != nil {
		return errInvalidCredentials()
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	emp.PasswordHash = hash

	if err := s.employees.Update(ctx, emp); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *EmployeeService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *EmployeeService) publish(ctx context.Context, eventType events.EventType, employeeID string, actor events.Actor, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EmployeeID: employeeID,
		Actor:      actor,
		Timestamp:  time.Now(),
		Payload:    payload,
	})
}

func actorOf(p auth.Principal) events.Actor {
	return events.Actor{EmpID: p.EmpID, Role: p.Role}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
