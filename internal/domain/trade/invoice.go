package trade

import (
	"time"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/shared"
)

// InvoiceNumberPrefix is prepended to the order number to derive the
// invoice number of an issued order.
const InvoiceNumberPrefix = "INV-"

// InvoiceNumberFor derives the deterministic invoice number for an order number
func InvoiceNumberFor(orderNumber string) string {
	return InvoiceNumberPrefix + orderNumber
}

// Invoice is issued for exactly one order, created in the same transaction
// as the order itself. Clients never create or delete invoices directly,
// and deleting an order does not cascade to its invoice: the invoice stays
// behind as the audit record of the issuance.
type Invoice struct {
	shared.TenantEntity
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index" json:"orderId"`
	InvoiceNumber string    `gorm:"type:varchar(110);not null;index" json:"invoiceNumber"`
	Date          time.Time `gorm:"not null" json:"date"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoiceForOrder creates the invoice derived from a newly issued order
func NewInvoiceForOrder(order *Order, modifiedBy uuid.UUID) *Invoice {
	return &Invoice{
		TenantEntity:  shared.NewTenantEntity(order.CompanyID, modifiedBy),
		OrderID:       order.ID,
		InvoiceNumber: InvoiceNumberFor(order.OrderNumber),
		Date:          time.Now(),
	}
}
