package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/ims/backend/internal/application/identity"
	"github.com/ims/backend/internal/infrastructure/auth"
	"github.com/ims/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles sign-up, login and logout endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
	blacklist   auth.TokenBlacklist
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService, blacklist auth.TokenBlacklist) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		blacklist:   blacklist,
	}
}

// RegisterPublicRoutes registers the endpoints reachable without a token
func (h *AuthHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	authGroup.POST("/register-company", h.RegisterCompany)
	authGroup.POST("/login", h.Login)
}

// RegisterProtectedRoutes registers the endpoints that need a valid token
func (h *AuthHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	authGroup.POST("/register-user", h.RegisterUser)
	authGroup.POST("/logout", h.Logout)
}

// RegisterCompany signs up a new company with its owner account
func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req identityapp.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.authService.RegisterCompany(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// Login authenticates a user and issues an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RegisterUser adds a user to the caller's company. Owner only.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.authService.RegisterUser(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// Logout revokes the presented token for its remaining lifetime
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.blacklist.AddToBlacklist(c.Request.Context(), claims.ID, claims.GetRemainingTTL()); err != nil {
		h.InternalError(c, "Could not revoke token")
		return
	}

	h.Message(c, "Logged out successfully")
}
