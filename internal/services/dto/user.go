package dto

import (
	"research_connect/internal/models"
)

// UserResponse is the sanitized profile projection. The password hash,
// admin flag and recovery tokens never leave the service layer.
type UserResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"userType"`
	CollegeName string          `json:"collegeName"`
	Interests   []string        `json:"interests"`
	IsVerified  bool            `json:"isVerified"`

	// Student fields
	GraduationYear int     `json:"graduationYear,omitempty"`
	CGPA           float64 `json:"cgpa,omitempty"`

	// Professor fields
	Position      string   `json:"position,omitempty"`
	GoogleScholar string   `json:"googleScholar,omitempty"`
	OtherLinks    []string `json:"otherLinks,omitempty"`
}

// UpdateProfileRequest covers the fields the account holder may change.
// Email and role are immutable. The role-specific fields are pointers
// so an absent field leaves the stored value alone while an explicit
// zero or empty value overwrites it.
type UpdateProfileRequest struct {
	Name        string   `json:"name" validate:"required"`
	CollegeName string   `json:"collegeName" validate:"required"`
	Interests   []string `json:"interests"`

	// Student fields
	GraduationYear *int     `json:"graduationYear,omitempty" validate:"omitempty,grad_year"`
	CGPA           *float64 `json:"cgpa,omitempty" validate:"omitempty,cgpa"`

	// Professor fields
	Position      *string  `json:"position,omitempty"`
	GoogleScholar *string  `json:"googleScholar,omitempty" validate:"omitempty,url"`
	OtherLinks    []string `json:"otherLinks,omitempty" validate:"omitempty,dive,url"`
}
