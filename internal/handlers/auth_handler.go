package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"research_connect/internal/logger"
	"research_connect/internal/middleware"
	"research_connect/internal/services"
	"research_connect/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService  services.AuthService
	secureCookie bool
	// sessionTTL matches the signed token expiry; the cookie Max-Age
	// is derived from it.
	sessionTTL time.Duration
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, secureCookie bool, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  base,
		authService:  authService,
		secureCookie: secureCookie,
		sessionTTL:   sessionTTL,
	}
}

// RegisterRoutes mounts the auth endpoints under /auth.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/forgotpassword", h.ForgotPassword)
		auth.POST("/resetpassword", h.ResetPassword)
		auth.POST("/verifyemail", h.VerifyEmail)
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Signup(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration successful",
		"success": true,
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	result, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token, int(h.sessionTTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"success": true,
		"user":    result.User,
	})
}

// Logout clears the session cookie. Tokens are stateless, so expiring
// the cookie is the whole operation.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
		"success": true,
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.RequestPasswordReset(db, req.Email); err != nil {
		// Hidden from the caller so the endpoint does not reveal
		// which addresses are registered.
		logger.CtxWarn(c.Request.Context(), "password reset request failed",
			"error", err.Error(),
			"email", req.Email,
		)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "If the email exists, a password reset link has been sent",
		"success": true,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.ResetPassword(db, req.Token, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password successfully reset",
		"success": true,
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.VerifyEmail(db, req.Token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email successfully verified",
		"success": true,
	})
}

// setSessionCookie writes the http-only, SameSite=Strict session
// cookie scoped to the whole application path. Secure is enabled in
// production only so local development over plain HTTP still works.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", h.secureCookie, true)
}
