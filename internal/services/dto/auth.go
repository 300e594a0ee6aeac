package dto

import (
	"research_connect/internal/models"
)

// SignupRequest carries the registration form. Role-conditional fields
// are re-validated server-side; the client-side check is not trusted.
type SignupRequest struct {
	Role            models.UserRole `json:"userType" validate:"required,academic_role"`
	Name            string          `json:"name" validate:"required"`
	Email           string          `json:"email" validate:"required,email"`
	Password        string          `json:"password" validate:"required,min=8"`
	ConfirmPassword string          `json:"confirmPassword" validate:"required"`
	CollegeName     string          `json:"collegeName" validate:"required"`
	Interests       []string        `json:"interests"`

	// Student fields
	GraduationYear int     `json:"graduationYear,omitempty" validate:"omitempty,grad_year"`
	CGPA           float64 `json:"cgpa,omitempty" validate:"omitempty,cgpa"`

	// Professor fields
	Position      string   `json:"position,omitempty"`
	GoogleScholar string   `json:"googleScholar,omitempty" validate:"omitempty,url"`
	OtherLinks    []string `json:"otherLinks,omitempty" validate:"omitempty,dive,url"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is what the service hands back; the handler turns Token
// into the session cookie.
type LoginResult struct {
	Token string
	User  SessionUser
}

// SessionUser mirrors the token claims echoed to the client on login.
type SessionUser struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"userType"`
	CollegeName string          `json:"collegeName"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}
