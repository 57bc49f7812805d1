package events

import (
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeSignedUp EventType = "employee_signed_up"
	EventEmployeeUpdated  EventType = "employee_updated"
	EventEmployeeDeleted  EventType = "employee_deleted"
)

// Actor encapsulates actor metadata for an event. EmpID is empty for
// self-service actions such as signup.
type Actor struct {
	EmpID string      `json:"emp_id,omitempty"`
	Role  domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	EmployeeID string      `json:"employee_id"`
	Actor      Actor       `json:"actor"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// EmployeeSignedUpPayload payload.
type EmployeeSignedUpPayload struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// EmployeeUpdatedPayload payload.
type EmployeeUpdatedPayload struct {
	OldRole domain.Role `json:"old_role"`
	NewRole domain.Role `json:"new_role"`
}

// EmployeeDeletedPayload payload.
type EmployeeDeletedPayload struct {
	Email string `json:"email"`
}
