package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"research_connect/internal/middleware"
	"research_connect/internal/services"
	"research_connect/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	tokenSecret string
}

func NewUserHandler(base *BaseHandler, userService services.UserService, tokenSecret string) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		tokenSecret: tokenSecret,
	}
}

// RegisterRoutes mounts the user endpoints under /users. The /me
// routes sit behind the session cookie middleware.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/:id", h.GetUser)
	}

	me := rg.Group("/users/me")
	me.Use(middleware.CookieAuthMiddleware(h.tokenSecret))
	{
		me.GET("", h.Me)
		me.PUT("", h.UpdateProfile)
	}
}

// Me resolves the authenticated user's record. No caching: every call
// re-verifies the token and re-queries the store.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.GetByID(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.userService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.UpdateProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}
