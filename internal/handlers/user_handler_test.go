package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"research_connect/internal/auth"
	"research_connect/internal/middleware"
	"research_connect/internal/models"
	"research_connect/internal/services/dto"
	"research_connect/pkg/apperrors"
)

func validSessionCookie(t *testing.T, userID string, ttl time.Duration) *http.Cookie {
	t.Helper()

	token, err := auth.GenerateToken(auth.SessionClaims{
		UserID:      userID,
		Name:        "Grace Hopper",
		Email:       "grace@example.edu",
		Role:        models.UserRoleStudent,
		CollegeName: "Compiler College",
	}, testTokenSecret, ttl)
	require.NoError(t, err)

	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

func TestMeEndpoint(t *testing.T) {
	userSvc := &stubUserService{
		getResp: &dto.UserResponse{
			ID:    "user-1",
			Name:  "Grace Hopper",
			Email: "grace@example.edu",
			Role:  models.UserRoleStudent,
		},
	}
	router := newTestRouter(&stubAuthService{}, userSvc, testTokenSecret)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/me", nil,
		validSessionCookie(t, "user-1", time.Hour))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "grace@example.edu", data["email"])

	// The lookup uses the ID from the verified token, not any client
	// supplied value.
	assert.Equal(t, "user-1", userSvc.lastGetID)
}

func TestMeEndpointNoCookie(t *testing.T) {
	router := newTestRouter(&stubAuthService{}, &stubUserService{}, testTokenSecret)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/me", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Not authenticated", errObj["message"])
}

func TestMeEndpointInvalidToken(t *testing.T) {
	router := newTestRouter(&stubAuthService{}, &stubUserService{}, testTokenSecret)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/me", nil,
		&http.Cookie{Name: middleware.SessionCookieName, Value: "garbage"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeEndpointExpiredToken(t *testing.T) {
	router := newTestRouter(&stubAuthService{}, &stubUserService{}, testTokenSecret)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/me", nil,
		validSessionCookie(t, "user-1", -time.Minute))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeEndpointUserGone(t *testing.T) {
	// A valid token whose account has since been deleted.
	userSvc := &stubUserService{getErr: apperrors.ErrUserNotFound}
	router := newTestRouter(&stubAuthService{}, userSvc, testTokenSecret)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/me", nil,
		validSessionCookie(t, "user-1", time.Hour))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMeEndpointMissingSecret(t *testing.T) {
	router := newTestRouter(&stubAuthService{}, &stubUserService{}, "")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/me", nil,
		validSessionCookie(t, "user-1", time.Hour))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetUserEndpoint(t *testing.T) {
	userSvc := &stubUserService{
		getResp: &dto.UserResponse{
			ID:    "user-2",
			Name:  "Donald Knuth",
			Email: "don@example.edu",
			Role:  models.UserRoleProfessor,
		},
	}
	router := newTestRouter(&stubAuthService{}, userSvc, testTokenSecret)

	// Public route, no cookie needed.
	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/user-2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-2", userSvc.lastGetID)
}

func TestGetUserEndpointNotFound(t *testing.T) {
	userSvc := &stubUserService{getErr: apperrors.ErrUserNotFound}
	router := newTestRouter(&stubAuthService{}, userSvc, testTokenSecret)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/unknown-id", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	userSvc := &stubUserService{
		updateResp: &dto.UserResponse{
			ID:   "user-1",
			Name: "Grace B. Hopper",
		},
	}
	router := newTestRouter(&stubAuthService{}, userSvc, testTokenSecret)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/users/me", map[string]interface{}{
		"name":        "Grace B. Hopper",
		"collegeName": "Naval College",
	}, validSessionCookie(t, "user-1", time.Hour))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Grace B. Hopper", data["name"])
}

func TestUpdateProfileEndpointRequiresAuth(t *testing.T) {
	router := newTestRouter(&stubAuthService{}, &stubUserService{}, testTokenSecret)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/users/me", map[string]interface{}{
		"name":        "Grace B. Hopper",
		"collegeName": "Naval College",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfileEndpointValidation(t *testing.T) {
	router := newTestRouter(&stubAuthService{}, &stubUserService{}, testTokenSecret)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/users/me", map[string]interface{}{
		"collegeName": "Naval College",
	}, validSessionCookie(t, "user-1", time.Hour))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
