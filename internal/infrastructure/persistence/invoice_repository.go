package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ims/backend/internal/domain/trade"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	TenantStore[trade.Invoice, *trade.Invoice]
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		TenantStore: NewTenantStore[trade.Invoice, *trade.Invoice](db, "Invoice", "invoices"),
	}
}

// ExistsByNumber checks if an invoice number is taken within a company
func (r *GormInvoiceRepository) ExistsByNumber(ctx context.Context, companyID uuid.UUID, invoiceNumber string) (bool, error) {
	var count int64
	if err := r.DB().WithContext(ctx).
		Model(&trade.Invoice{}).
		Where("company_id = ? AND invoice_number = ?", companyID, invoiceNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ trade.InvoiceRepository = (*GormInvoiceRepository)(nil)
