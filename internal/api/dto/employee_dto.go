package dto

import "time"

// SignupRequest payload for new employees.
type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
	Address     string `json:"address"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateRequest carries the mutable employee fields. Absent fields are
// left unchanged.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	Role        *string `json:"role"`
	Address     *string `json:"address"`
}

// PasswordChangeRequest payload for self-service password changes.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// EmployeeResponse is the public employee shape. It never carries the
// password hash.
type EmployeeResponse struct {
	EmpID       string `json:"empId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
	Address     string `json:"address"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
