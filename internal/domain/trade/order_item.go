package trade

import (
	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/shared"
)

// OrderItem is a quantity of one product on one order. It carries no
// company ID of its own; tenant scope is derived through its order.
// A product may appear at most once per order.
type OrderItem struct {
	shared.BaseEntity
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index" json:"orderId"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	ModifiedBy uuid.UUID `gorm:"type:uuid;not null" json:"modifiedBy"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a new order item
func NewOrderItem(orderID, productID uuid.UUID, quantity int, modifiedBy uuid.UUID) (*OrderItem, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Order item requires an order")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Order item requires a product")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Quantity must be greater than zero")
	}

	return &OrderItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		ProductID:  productID,
		Quantity:   quantity,
		ModifiedBy: modifiedBy,
	}, nil
}
