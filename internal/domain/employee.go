package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of privilege labels an employee can hold.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleManager, RoleStaff:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// Employee is the domain model for employee accounts.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Designation  string
	Role         Role
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
