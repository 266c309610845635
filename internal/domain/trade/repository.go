package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/shared"
)

// OrderRepository persists orders. CreateWithInvoice is the one
// multi-statement operation in the system that must be atomic.
type OrderRepository interface {
	shared.TenantRepository[Order]

	// ExistsByNumber checks order number uniqueness within a company
	ExistsByNumber(ctx context.Context, companyID uuid.UUID, orderNumber string) (bool, error)

	// CreateWithInvoice inserts the order and its derived invoice in a single
	// transaction. Inside the transaction it re-checks order and invoice
	// number uniqueness within the company and returns a Conflict error on
	// collision; on any failure neither row persists.
	CreateWithInvoice(ctx context.Context, order *Order, invoice *Invoice) error
}

// OrderItemRepository persists order items. Order items have no company
// column; the tenant checks walk through the owning order and exclude
// soft-deleted orders from the join.
type OrderItemRepository interface {
	// FindAll returns items whose order belongs to the company,
	// or every live item when companyID is zero.
	FindAll(ctx context.Context, companyID uuid.UUID) ([]OrderItem, error)

	// FindByID returns ErrNotFound for a missing item and a Forbidden error
	// when the item's order belongs to another company.
	FindByID(ctx context.Context, id, companyID uuid.UUID) (*OrderItem, error)

	// ExistsForProduct checks the (order, product) uniqueness pair
	ExistsForProduct(ctx context.Context, orderID, productID uuid.UUID) (bool, error)

	Save(ctx context.Context, item *OrderItem) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteByID(ctx context.Context, id, companyID uuid.UUID) error
}

// InvoiceRepository persists invoices. Invoices are read-only to clients;
// the only writer is the order issuance transaction.
type InvoiceRepository interface {
	shared.TenantRepository[Invoice]
	ExistsByNumber(ctx context.Context, companyID uuid.UUID, invoiceNumber string) (bool, error)
}
