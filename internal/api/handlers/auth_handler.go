package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gemchat-backend/internal/api/middleware"
	"gemchat-backend/internal/services"
)

type AuthHandler struct {
	users services.UserService
}

func NewAuthHandler(users services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// Login resolves the trusted pair to a user and drops identity cookies.
// There is no password; the pair is trusted as-is.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and email are required"})
		return
	}

	user, err := h.users.Resolve(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetIdentityCookies(c, user.Username, user.Email)
	c.JSON(http.StatusOK, gin.H{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearIdentityCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
