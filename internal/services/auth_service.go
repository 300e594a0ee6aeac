package services

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"research_connect/internal/auth"
	"research_connect/internal/email"
	"research_connect/internal/logger"
	"research_connect/internal/models"
	"research_connect/internal/repositories"
	"research_connect/internal/services/dto"
	"research_connect/pkg/apperrors"
)

const (
	resetTokenTTL  = 1 * time.Hour
	verifyTokenTTL = 24 * time.Hour
)

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResult, error)
	RequestPasswordReset(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
	VerifyEmail(db *gorm.DB, token string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	emailProvider email.Provider
	tokenSecret   string
	sessionTTL    time.Duration
	appBaseURL    string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	emailProvider email.Provider,
	tokenSecret string,
	sessionTTL time.Duration,
	appBaseURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		emailProvider: emailProvider,
		tokenSecret:   tokenSecret,
		sessionTTL:    sessionTTL,
		appBaseURL:    appBaseURL,
	}
}

// Signup validates the registration form, hashes the password and
// creates the user together with its role profile.
func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.UserResponse, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidUserRole
	}

	// The client checks this too, but the server does not trust it.
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.validateRoleFields(req); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	interests, err := marshalStrings(req.Interests)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	verifyToken := generateRandomToken()
	verifyExpiry := time.Now().Add(verifyTokenTTL)

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hashedPassword,
		Role:              req.Role,
		Name:              req.Name,
		CollegeName:       req.CollegeName,
		Interests:         interests,
		VerifyToken:       verifyToken,
		VerifyTokenExpiry: &verifyExpiry,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.createRoleProfile(db, user, req); err != nil {
		// Roll back the half-created account so the email stays free.
		if delErr := s.userRepo.Delete(db, user.ID); delErr != nil {
			logger.Error("failed to clean up user after profile error", "error", delErr, "user_id", user.ID)
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, verifyToken)

	return buildUserResponse(user), nil
}

// Login authenticates by email and password and issues the session
// token. The failure messages deliberately distinguish an unknown
// email from a wrong password; clients key off the exact copy.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResult, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotExists
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidPassword
	}

	claims := auth.SessionClaims{
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		CollegeName: user.CollegeName,
	}

	token, err := auth.GenerateToken(claims, s.tokenSecret, s.sessionTTL)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResult{
		Token: token,
		User: dto.SessionUser{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			Role:        user.Role,
			CollegeName: user.CollegeName,
		},
	}, nil
}

// RequestPasswordReset stores a reset token and mails the link. It
// succeeds silently for unknown emails so the endpoint does not reveal
// which addresses are registered.
func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	resetToken := generateRandomToken()
	resetExpiry := time.Now().Add(resetTokenTTL)

	err = s.userRepo.UpdateFields(db, user.ID, map[string]interface{}{
		"forgot_password_token":        resetToken,
		"forgot_password_token_expiry": &resetExpiry,
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user.Email, resetToken)
	return nil
}

// ResetPassword consumes a reset token and replaces the credential.
func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(db, token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if user.ForgotPasswordTokenExpiry == nil || time.Now().After(*user.ForgotPasswordTokenExpiry) {
		return apperrors.ErrInvalidToken
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	err = s.userRepo.UpdateFields(db, user.ID, map[string]interface{}{
		"password_hash":                hashedPassword,
		"forgot_password_token":        "",
		"forgot_password_token_expiry": nil,
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// VerifyEmail consumes a verification token and marks the account verified.
func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	user, err := s.userRepo.FindByVerifyToken(db, token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if user.VerifyTokenExpiry == nil || time.Now().After(*user.VerifyTokenExpiry) {
		return apperrors.ErrInvalidToken
	}

	if err := s.userRepo.VerifyUser(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Helpers ---

func (s *AuthServiceImpl) validateRoleFields(req *dto.SignupRequest) error {
	switch req.Role {
	case models.UserRoleStudent:
		if req.GraduationYear == 0 {
			return apperrors.ValidationError(map[string]string{"graduationYear": "This field is required for students"})
		}
		if req.CGPA <= 0 {
			return apperrors.ValidationError(map[string]string{"cgpa": "This field is required for students"})
		}
	case models.UserRoleProfessor:
		if req.Position == "" {
			return apperrors.ValidationError(map[string]string{"position": "This field is required for professors"})
		}
	}
	return nil
}

func (s *AuthServiceImpl) createRoleProfile(db *gorm.DB, user *models.User, req *dto.SignupRequest) error {
	switch user.Role {
	case models.UserRoleStudent:
		return s.profileRepo.CreateStudentProfile(db, &models.StudentProfile{
			UserID:         user.ID,
			GraduationYear: req.GraduationYear,
			CGPA:           req.CGPA,
		})
	case models.UserRoleProfessor:
		links, err := marshalStrings(req.OtherLinks)
		if err != nil {
			return err
		}
		return s.profileRepo.CreateProfessorProfile(db, &models.ProfessorProfile{
			UserID:        user.ID,
			Position:      req.Position,
			GoogleScholar: req.GoogleScholar,
			OtherLinks:    links,
		})
	}
	return nil
}

func (s *AuthServiceImpl) sendVerificationEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}
	link := fmt.Sprintf("%s/verifyemail?token=%s", s.appBaseURL, token)
	go func() {
		if err := s.emailProvider.SendVerification(to, link); err != nil {
			logger.Error("failed to send verification email", "error", err, "to", to)
		}
	}()
}

func (s *AuthServiceImpl) sendPasswordResetEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}
	link := fmt.Sprintf("%s/resetpassword?token=%s", s.appBaseURL, token)
	go func() {
		if err := s.emailProvider.SendPasswordReset(to, link); err != nil {
			logger.Error("failed to send password reset email", "error", err, "to", to)
		}
	}()
}

// generateRandomToken returns 32 hex chars of crypto randomness.
func generateRandomToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read failing means the platform entropy source is broken.
		panic(err)
	}
	return hex.EncodeToString(buf)
}

func marshalStrings(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}
	buf, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(buf), nil
}
