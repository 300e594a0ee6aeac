package repositories

import (
	"errors"

	"gorm.io/gorm"

	"research_connect/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	CreateStudentProfile(db *gorm.DB, profile *models.StudentProfile) error
	CreateProfessorProfile(db *gorm.DB, profile *models.ProfessorProfile) error
	FindStudentProfileByUserID(db *gorm.DB, userID string) (*models.StudentProfile, error)
	FindProfessorProfileByUserID(db *gorm.DB, userID string) (*models.ProfessorProfile, error)
	UpdateStudentProfile(db *gorm.DB, profile *models.StudentProfile) error
	UpdateProfessorProfile(db *gorm.DB, profile *models.ProfessorProfile) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) CreateStudentProfile(db *gorm.DB, profile *models.StudentProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateProfessorProfile(db *gorm.DB, profile *models.ProfessorProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindStudentProfileByUserID(db *gorm.DB, userID string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindProfessorProfileByUserID(db *gorm.DB, userID string) (*models.ProfessorProfile, error) {
	var profile models.ProfessorProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateStudentProfile(db *gorm.DB, profile *models.StudentProfile) error {
	return db.Model(profile).Updates(map[string]interface{}{
		"graduation_year": profile.GraduationYear,
		"cgpa":            profile.CGPA,
	}).Error
}

func (r *ProfileRepositoryImpl) UpdateProfessorProfile(db *gorm.DB, profile *models.ProfessorProfile) error {
	return db.Model(profile).Updates(map[string]interface{}{
		"position":       profile.Position,
		"google_scholar": profile.GoogleScholar,
		"other_links":    profile.OtherLinks,
	}).Error
}
