package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Princessdada/Blogging-API/internal/domain"
	"github.com/Princessdada/Blogging-API/pkg/middleware"
	"github.com/Princessdada/Blogging-API/pkg/token"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	Service domain.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service domain.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req domain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Service.Signup(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

// Logout handles POST /auth/logout. The token the request authenticated with
// is denylisted until it would naturally expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	raw, ok := middleware.RawToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if err := h.Service.Logout(raw); err != nil {
		if errors.Is(err, token.ErrRevocationUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "logout not supported"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
