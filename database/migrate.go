package database

import (
	"gorm.io/gorm"

	"research_connect/internal/models"
)

// Migrate creates or updates the schema. The unique index on
// users.email comes from the model tags and is enforced by postgres.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.ProfessorProfile{},
	)
}
