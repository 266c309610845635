package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/ims/backend/internal/application/trade"
)

// OrderItemHandler handles order item endpoints
type OrderItemHandler struct {
	BaseHandler
	itemService *tradeapp.OrderItemService
}

// NewOrderItemHandler creates a new OrderItemHandler
func NewOrderItemHandler(itemService *tradeapp.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{itemService: itemService}
}

// RegisterRoutes registers order item routes
func (h *OrderItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/order-items")
	items.GET("", h.List)
	items.GET("/:id", h.GetByID)
	items.POST("", h.Create)
	items.PUT("/:id", h.Update)
	items.DELETE("/:id", h.Delete)
}

// Create adds a product to an order
func (h *OrderItemHandler) Create(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req tradeapp.CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.itemService.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns all order items of the caller's company
func (h *OrderItemHandler) List(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.itemService.List(c.Request.Context(), actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByID returns a single order item
func (h *OrderItemHandler) GetByID(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid order item ID")
		return
	}

	result, err := h.itemService.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Update changes an order item's quantity
func (h *OrderItemHandler) Update(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid order item ID")
		return
	}

	var req tradeapp.UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.itemService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete soft-deletes an order item
func (h *OrderItemHandler) Delete(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid order item ID")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Message(c, "Order item deleted successfully")
}
