package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/ims/backend/internal/application/catalog"
	inventoryapp "github.com/ims/backend/internal/application/inventory"
	partnerapp "github.com/ims/backend/internal/application/partner"
	"github.com/ims/backend/internal/domain/shared"
)

// AnalyticsHandler handles the cross-entity analytics endpoints.
// All three answer "no data" with a JSON null payload and status 200.
type AnalyticsHandler struct {
	BaseHandler
	warehouseService *inventoryapp.WarehouseService
	productService   *catalogapp.ProductService
	partnerService   *partnerapp.BusinessPartnerService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(warehouseService *inventoryapp.WarehouseService, productService *catalogapp.ProductService, partnerService *partnerapp.BusinessPartnerService) *AnalyticsHandler {
	return &AnalyticsHandler{
		warehouseService: warehouseService,
		productService:   productService,
		partnerService:   partnerService,
	}
}

// RegisterRoutes registers analytics routes
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	analytics.GET("/highest-stock-product", h.HighestStockProduct)
	analytics.GET("/best-selling-product", h.BestSellingProduct)
	analytics.GET("/customer-with-most-orders", h.CustomerWithMostOrders)
}

// HighestStockProduct returns the best stocked warehouse/product pair
func (h *AnalyticsHandler) HighestStockProduct(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.warehouseService.HighestStockProduct(c.Request.Context(), actor)
	if err != nil {
		if shared.IsNotFound(err) {
			// No positive stock anywhere is a null answer, not a 404
			h.Null(c)
			return
		}
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// BestSellingProduct returns the product with the highest total ordered quantity
func (h *AnalyticsHandler) BestSellingProduct(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.productService.BestSellingProduct(c.Request.Context(), actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if result == nil {
		h.Null(c)
		return
	}

	h.Success(c, result)
}

// CustomerWithMostOrders returns the customer partner with the most orders
func (h *AnalyticsHandler) CustomerWithMostOrders(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.partnerService.CustomerWithMostOrders(c.Request.Context(), actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if result == nil {
		h.Null(c)
		return
	}

	h.Success(c, result)
}
