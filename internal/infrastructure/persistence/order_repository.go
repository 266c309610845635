package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	TenantStore[trade.Order, *trade.Order]
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		TenantStore: NewTenantStore[trade.Order, *trade.Order](db, "Order", "orders"),
	}
}

// ExistsByNumber checks if an order number is taken within a company
func (r *GormOrderRepository) ExistsByNumber(ctx context.Context, companyID uuid.UUID, orderNumber string) (bool, error) {
	var count int64
	if err := r.DB().WithContext(ctx).
		Model(&trade.Order{}).
		Where("company_id = ? AND order_number = ?", companyID, orderNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateWithInvoice inserts an order and its derived invoice atomically.
// Both number uniqueness checks run inside the transaction; a collision
// rolls everything back so an order can never persist without its invoice
// nor an invoice without its order. An invoice-number collision means a
// manually seeded invoice squatted on the derived number — still surfaced
// as a Conflict, but it indicates a consistency problem, not user error.
func (r *GormOrderRepository) CreateWithInvoice(ctx context.Context, order *trade.Order, invoice *trade.Invoice) error {
	return r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&trade.Order{}).
			Where("company_id = ? AND order_number = ?", order.CompanyID, order.OrderNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return shared.ConflictError("Order number already exists in your company")
		}

		if err := tx.Create(order).Error; err != nil {
			return translateDuplicate(err, "Order number already exists in your company")
		}

		if err := tx.Model(&trade.Invoice{}).
			Where("company_id = ? AND invoice_number = ?", invoice.CompanyID, invoice.InvoiceNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return shared.ConflictError(fmt.Sprintf("Auto-generated invoice number %s already exists", invoice.InvoiceNumber))
		}

		if err := tx.Create(invoice).Error; err != nil {
			return translateDuplicate(err, fmt.Sprintf("Auto-generated invoice number %s already exists", invoice.InvoiceNumber))
		}

		return nil
	})
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
