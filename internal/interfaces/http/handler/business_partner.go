package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/ims/backend/internal/application/partner"
)

// BusinessPartnerHandler handles customer and supplier endpoints
type BusinessPartnerHandler struct {
	BaseHandler
	partnerService *partnerapp.BusinessPartnerService
}

// NewBusinessPartnerHandler creates a new BusinessPartnerHandler
func NewBusinessPartnerHandler(partnerService *partnerapp.BusinessPartnerService) *BusinessPartnerHandler {
	return &BusinessPartnerHandler{partnerService: partnerService}
}

// RegisterRoutes registers business partner routes
func (h *BusinessPartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	partners := rg.Group("/business-partners")
	partners.GET("", h.List)
	partners.GET("/:id", h.GetByID)
	partners.POST("", h.Create)
	partners.PUT("/:id", h.Update)
	partners.DELETE("/:id", h.Delete)
}

// Create creates a new business partner
func (h *BusinessPartnerHandler) Create(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req partnerapp.CreateBusinessPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.partnerService.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns all business partners of the caller's company
func (h *BusinessPartnerHandler) List(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.partnerService.List(c.Request.Context(), actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByID returns a single business partner
func (h *BusinessPartnerHandler) GetByID(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid business partner ID")
		return
	}

	result, err := h.partnerService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Update applies a partial update to a business partner
func (h *BusinessPartnerHandler) Update(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid business partner ID")
		return
	}

	var req partnerapp.UpdateBusinessPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.partnerService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete soft-deletes a business partner
func (h *BusinessPartnerHandler) Delete(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid business partner ID")
		return
	}

	if err := h.partnerService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Message(c, "Business partner deleted successfully")
}
