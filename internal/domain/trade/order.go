package trade

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/shared"
)

// OrderType gives an order its sign in the inventory ledger:
// deliveries add stock, shipments subtract it.
type OrderType string

const (
	OrderTypeShipment OrderType = "shipment"
	OrderTypeDelivery OrderType = "delivery"
)

// IsValid reports whether the order type is known
func (t OrderType) IsValid() bool {
	return t == OrderTypeShipment || t == OrderTypeDelivery
}

// Order represents a shipment or delivery against a warehouse for a
// business partner. The order number is unique within a company.
// Creating an order always creates its invoice in the same transaction.
type Order struct {
	shared.TenantEntity
	WarehouseID       uuid.UUID `gorm:"type:uuid;not null;index" json:"warehouseId"`
	BusinessPartnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"businessPartnerId"`
	OrderNumber       string    `gorm:"type:varchar(100);not null;index" json:"orderNumber"`
	Type              OrderType `gorm:"type:varchar(20);not null" json:"type"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order
func NewOrder(companyID, warehouseID, businessPartnerID uuid.UUID, orderNumber string, orderType OrderType, modifiedBy uuid.UUID) (*Order, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Order number cannot be empty")
	}
	if len(orderNumber) > 100 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Order number cannot exceed 100 characters")
	}
	if !orderType.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid order type")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Order requires a warehouse")
	}
	if businessPartnerID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Order requires a business partner")
	}

	return &Order{
		TenantEntity:      shared.NewTenantEntity(companyID, modifiedBy),
		WarehouseID:       warehouseID,
		BusinessPartnerID: businessPartnerID,
		OrderNumber:       strings.TrimSpace(orderNumber),
		Type:              orderType,
	}, nil
}

// IsDelivery returns true for stock-increasing orders
func (o *Order) IsDelivery() bool {
	return o.Type == OrderTypeDelivery
}
