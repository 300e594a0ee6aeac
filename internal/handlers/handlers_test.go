package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"research_connect/internal/middleware"
	"research_connect/internal/services/dto"
	"research_connect/internal/validator"
)

const testTokenSecret = "handler-test-secret"

// stubAuthService returns canned results so the handler tests never
// touch a database.
type stubAuthService struct {
	signupResp *dto.UserResponse
	signupErr  error
	loginResp  *dto.LoginResult
	loginErr   error
	forgotErr  error
	resetErr   error
	verifyErr  error

	signupCalls int
	loginCalls  int
}

func (s *stubAuthService) Signup(_ *gorm.DB, _ *dto.SignupRequest) (*dto.UserResponse, error) {
	s.signupCalls++
	return s.signupResp, s.signupErr
}

func (s *stubAuthService) Login(_ *gorm.DB, _ *dto.LoginRequest) (*dto.LoginResult, error) {
	s.loginCalls++
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) RequestPasswordReset(_ *gorm.DB, _ string) error {
	return s.forgotErr
}

func (s *stubAuthService) ResetPassword(_ *gorm.DB, _, _ string) error {
	return s.resetErr
}

func (s *stubAuthService) VerifyEmail(_ *gorm.DB, _ string) error {
	return s.verifyErr
}

type stubUserService struct {
	getResp    *dto.UserResponse
	getErr     error
	updateResp *dto.UserResponse
	updateErr  error

	lastGetID string
}

func (s *stubUserService) GetByID(_ *gorm.DB, id string) (*dto.UserResponse, error) {
	s.lastGetID = id
	return s.getResp, s.getErr
}

func (s *stubUserService) UpdateProfile(_ *gorm.DB, _ string, _ *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	return s.updateResp, s.updateErr
}

// newTestRouter wires the handlers the same way the app does, minus
// logging and CORS. DBMiddleware carries a nil handle; the stubs
// never dereference it.
func newTestRouter(authSvc *stubAuthService, userSvc *stubUserService, tokenSecret string) *gin.Engine {
	return newTestRouterTTL(authSvc, userSvc, tokenSecret, 24*time.Hour)
}

func newTestRouterTTL(authSvc *stubAuthService, userSvc *stubUserService, tokenSecret string, sessionTTL time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)

	base := NewBaseHandler(validator.New())
	router := gin.New()
	router.Use(middleware.DBMiddleware(nil))

	api := router.Group("/api/v1")
	NewAuthHandler(base, authSvc, false, sessionTTL).RegisterRoutes(api)
	NewUserHandler(base, userSvc, tokenSecret).RegisterRoutes(api)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
	return body
}

// sessionCookie digs the session cookie out of the recorded response.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}
