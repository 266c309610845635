package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/ims/backend/internal/application/identity"
)

// CompanyHandler handles endpoints for the caller's own company
type CompanyHandler struct {
	BaseHandler
	companyService *identityapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *identityapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// RegisterRoutes registers company routes
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/company")
	companies.GET("", h.Get)
	companies.PUT("", h.Update)
	companies.DELETE("", h.Delete)
}

// Get returns the caller's company
func (h *CompanyHandler) Get(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.companyService.Get(c.Request.Context(), actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Update renames the caller's company
func (h *CompanyHandler) Update(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.companyService.Update(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete soft-deletes the caller's company
func (h *CompanyHandler) Delete(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), actor); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Message(c, "Company deleted successfully")
}
