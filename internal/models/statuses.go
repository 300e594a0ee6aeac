package models

type UserRole string

const (
	UserRoleStudent   UserRole = "student"
	UserRoleProfessor UserRole = "professor"
)

// IsValid reports whether the role is one of the two registrable roles.
func (r UserRole) IsValid() bool {
	return r == UserRoleStudent || r == UserRoleProfessor
}
