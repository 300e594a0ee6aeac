package services

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"research_connect/internal/models"
	"research_connect/internal/repositories"
	"research_connect/internal/services/dto"
	"research_connect/pkg/apperrors"
)

type UserService interface {
	// GetByID returns the sanitized profile projection.
	GetByID(db *gorm.DB, id string) (*dto.UserResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewUserService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *UserServiceImpl) GetByID(db *gorm.DB, id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(user), nil
}

// UpdateProfile mutates the common fields and the fields of the user's
// own role. Role and email stay fixed; payload fields belonging to the
// other role are ignored.
func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	interests, err := marshalStrings(req.Interests)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateFields(db, user.ID, map[string]interface{}{
		"name":         req.Name,
		"college_name": req.CollegeName,
		"interests":    interests,
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.updateRoleProfile(db, user, req); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(updated), nil
}

func (s *UserServiceImpl) updateRoleProfile(db *gorm.DB, user *models.User, req *dto.UpdateProfileRequest) error {
	switch user.Role {
	case models.UserRoleStudent:
		profile, err := s.profileRepo.FindStudentProfileByUserID(db, user.ID)
		if err != nil {
			return err
		}
		if req.GraduationYear != nil {
			profile.GraduationYear = *req.GraduationYear
		}
		if req.CGPA != nil {
			profile.CGPA = *req.CGPA
		}
		return s.profileRepo.UpdateStudentProfile(db, profile)
	case models.UserRoleProfessor:
		profile, err := s.profileRepo.FindProfessorProfileByUserID(db, user.ID)
		if err != nil {
			return err
		}
		if req.Position != nil {
			profile.Position = *req.Position
		}
		if req.GoogleScholar != nil {
			profile.GoogleScholar = *req.GoogleScholar
		}
		if req.OtherLinks != nil {
			links, err := marshalStrings(req.OtherLinks)
			if err != nil {
				return err
			}
			profile.OtherLinks = links
		}
		return s.profileRepo.UpdateProfessorProfile(db, profile)
	}
	return nil
}

// buildUserResponse projects a User into its public shape, dropping
// the password hash, admin flag and recovery tokens.
func buildUserResponse(user *models.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		CollegeName: user.CollegeName,
		Interests:   unmarshalStrings(user.Interests),
		IsVerified:  user.IsVerified,
	}

	if user.StudentProfile != nil {
		resp.GraduationYear = user.StudentProfile.GraduationYear
		resp.CGPA = user.StudentProfile.CGPA
	}
	if user.ProfessorProfile != nil {
		resp.Position = user.ProfessorProfile.Position
		resp.GoogleScholar = user.ProfessorProfile.GoogleScholar
		resp.OtherLinks = unmarshalStrings(user.ProfessorProfile.OtherLinks)
	}

	return resp
}

func unmarshalStrings(data datatypes.JSON) []string {
	values := []string{}
	if len(data) == 0 {
		return values
	}
	// A malformed blob degrades to an empty list rather than an error.
	_ = json.Unmarshal(data, &values)
	return values
}
