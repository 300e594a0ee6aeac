package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"research_connect/internal/models"
	"research_connect/internal/repositories"
)

// fakeUserRepo is an in-memory stand-in for the gorm repository. The
// db argument is ignored, so service tests pass a nil handle.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateFields(_ *gorm.DB, userID string, fields map[string]interface{}) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			user.Name = value.(string)
		case "college_name":
			user.CollegeName = value.(string)
		case "interests":
			user.Interests = value.(datatypes.JSON)
		case "password_hash":
			user.PasswordHash = value.(string)
		case "forgot_password_token":
			user.ForgotPasswordToken = value.(string)
		case "forgot_password_token_expiry":
			if value == nil {
				user.ForgotPasswordTokenExpiry = nil
			} else {
				user.ForgotPasswordTokenExpiry = value.(*time.Time)
			}
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ *gorm.DB, userID string) error {
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) FindByResetToken(_ *gorm.DB, token string) (*models.User, error) {
	for _, user := range r.users {
		if user.ForgotPasswordToken != "" && user.ForgotPasswordToken == token {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByVerifyToken(_ *gorm.DB, token string) (*models.User, error) {
	for _, user := range r.users {
		if user.VerifyToken != "" && user.VerifyToken == token {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) VerifyUser(_ *gorm.DB, userID string) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.IsVerified = true
	user.VerifyToken = ""
	user.VerifyTokenExpiry = nil
	return nil
}

type fakeProfileRepo struct {
	students       map[string]*models.StudentProfile
	professors     map[string]*models.ProfessorProfile
	failNextCreate error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		students:   map[string]*models.StudentProfile{},
		professors: map[string]*models.ProfessorProfile{},
	}
}

func (r *fakeProfileRepo) CreateStudentProfile(_ *gorm.DB, profile *models.StudentProfile) error {
	if r.failNextCreate != nil {
		err := r.failNextCreate
		r.failNextCreate = nil
		return err
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.students[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) CreateProfessorProfile(_ *gorm.DB, profile *models.ProfessorProfile) error {
	if r.failNextCreate != nil {
		err := r.failNextCreate
		r.failNextCreate = nil
		return err
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.professors[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindStudentProfileByUserID(_ *gorm.DB, userID string) (*models.StudentProfile, error) {
	profile, ok := r.students[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) FindProfessorProfileByUserID(_ *gorm.DB, userID string) (*models.ProfessorProfile, error) {
	profile, ok := r.professors[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) UpdateStudentProfile(_ *gorm.DB, profile *models.StudentProfile) error {
	r.students[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) UpdateProfessorProfile(_ *gorm.DB, profile *models.ProfessorProfile) error {
	r.professors[profile.UserID] = profile
	return nil
}
