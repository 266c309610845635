package trade

import (
	"time"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/trade"
)

// =============================================================================
// Order DTOs
// =============================================================================

// CreateOrderRequest creates a new order; the invoice is derived, never supplied
type CreateOrderRequest struct {
	WarehouseID       uuid.UUID `json:"warehouseId" binding:"required"`
	BusinessPartnerID uuid.UUID `json:"businessPartnerId" binding:"required"`
	OrderNumber       string    `json:"orderNumber" binding:"required,min=1,max=100"`
	Type              string    `json:"type" binding:"required,oneof=shipment delivery"`
}

// UpdateOrderRequest applies a partial update; nil fields are untouched
type UpdateOrderRequest struct {
	WarehouseID       *uuid.UUID `json:"warehouseId"`
	BusinessPartnerID *uuid.UUID `json:"businessPartnerId"`
	OrderNumber       *string    `json:"orderNumber" binding:"omitempty,min=1,max=100"`
	Type              *string    `json:"type" binding:"omitempty,oneof=shipment delivery"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                uuid.UUID `json:"id"`
	CompanyID         uuid.UUID `json:"companyId"`
	WarehouseID       uuid.UUID `json:"warehouseId"`
	BusinessPartnerID uuid.UUID `json:"businessPartnerId"`
	OrderNumber       string    `json:"orderNumber"`
	Type              string    `json:"type"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ToOrderResponse maps an order entity to its response form
func ToOrderResponse(o *trade.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		CompanyID:         o.CompanyID,
		WarehouseID:       o.WarehouseID,
		BusinessPartnerID: o.BusinessPartnerID,
		OrderNumber:       o.OrderNumber,
		Type:              string(o.Type),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

// =============================================================================
// Order item DTOs
// =============================================================================

// CreateOrderItemRequest adds a product to an order
type CreateOrderItemRequest struct {
	OrderID   uuid.UUID `json:"orderId" binding:"required"`
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// UpdateOrderItemRequest applies a partial update; nil fields are untouched
type UpdateOrderItemRequest struct {
	Quantity *int `json:"quantity" binding:"omitempty,gt=0"`
}

// OrderItemResponse represents an order item in API responses
type OrderItemResponse struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"orderId"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToOrderItemResponse maps an order item entity to its response form
func ToOrderItemResponse(i *trade.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        i.ID,
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID            uuid.UUID `json:"id"`
	CompanyID     uuid.UUID `json:"companyId"`
	OrderID       uuid.UUID `json:"orderId"`
	InvoiceNumber string    `json:"invoiceNumber"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToInvoiceResponse maps an invoice entity to its response form
func ToInvoiceResponse(inv *trade.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		CompanyID:     inv.CompanyID,
		OrderID:       inv.OrderID,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
