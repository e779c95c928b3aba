package handlers

import (
	"github.com/architect/lostfound/internal/auth"
	"github.com/architect/lostfound/internal/common/errors"
	"github.com/architect/lostfound/internal/common/middleware"
	"github.com/gin-gonic/gin"
)

// LoginHandlers issues identity tokens for users and admins.
type LoginHandlers struct {
	tokens        *auth.TokenManager
	adminEmail    string
	adminPassword string
}

// NewLoginHandlers creates login handlers backed by the given token
// manager and the configured admin credentials.
func NewLoginHandlers(tokens *auth.TokenManager, adminEmail, adminPassword string) *LoginHandlers {
	return &LoginHandlers{
		tokens:        tokens,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

type userLoginRequest struct {
	Email string `json:"email"`
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// UserLogin issues a user-role token for the given email.
func (h *LoginHandlers) UserLogin(c *gin.Context) {
	var req userLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		middleware.JSONErrorResponse(c, errors.BadRequest("email is required"))
		return
	}

	token, err := h.tokens.Generate(req.Email, auth.RoleUser)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.Internal("failed to issue token", err.Error()))
		return
	}

	c.JSON(200, tokenResponse{Token: token})
}

// AdminLogin issues an admin-role token when the credentials match the
// configured admin account.
func (h *LoginHandlers) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		middleware.JSONErrorResponse(c, errors.BadRequest("email and password are required"))
		return
	}

	if req.Email != h.adminEmail || req.Password != h.adminPassword {
		middleware.JSONErrorResponse(c, errors.Unauthorized("invalid admin credentials"))
		return
	}

	token, err := h.tokens.Generate(req.Email, auth.RoleAdmin)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.Internal("failed to issue token", err.Error()))
		return
	}

	c.JSON(200, tokenResponse{Token: token})
}
