package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`

	// Common profile fields, shared by both roles.
	Name        string         `gorm:"not null"`
	CollegeName string         `gorm:"not null"`
	Interests   datatypes.JSON `gorm:"type:jsonb"`

	IsVerified bool `gorm:"default:false"`
	IsAdmin    bool `gorm:"default:false"`

	ForgotPasswordToken       string
	ForgotPasswordTokenExpiry *time.Time
	VerifyToken               string
	VerifyTokenExpiry         *time.Time

	// Exactly one of these is populated, depending on Role.
	StudentProfile   *StudentProfile   `gorm:"foreignKey:UserID"`
	ProfessorProfile *ProfessorProfile `gorm:"foreignKey:UserID"`
}

// StudentProfile holds the fields that only make sense for students.
type StudentProfile struct {
	BaseModel
	UserID         string  `gorm:"type:uuid;not null;uniqueIndex"`
	GraduationYear int     `gorm:"not null"`
	CGPA           float64 `gorm:"not null"`
}

// ProfessorProfile holds the fields that only make sense for professors.
type ProfessorProfile struct {
	BaseModel
	UserID        string `gorm:"type:uuid;not null;uniqueIndex"`
	Position      string `gorm:"not null"`
	GoogleScholar string
	OtherLinks    datatypes.JSON `gorm:"type:jsonb"`
}
