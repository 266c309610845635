package persistence

import (
	"gorm.io/gorm"

	"github.com/ims/backend/internal/domain/catalog"
	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/trade"
)

// AutoMigrate creates or updates the schema for all entities and the
// uniqueness constraints the application-level pre-checks rely on.
//
// The unique indexes are partial (live rows only): rows are soft-deleted,
// never removed, and a deleted order must not keep its number reserved
// forever. The application pre-checks give friendly errors in the common
// case; these indexes are the source of truth under concurrency.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&identity.Company{},
		&identity.User{},
		&partner.BusinessPartner{},
		&catalog.Product{},
		&inventory.Warehouse{},
		&trade.Order{},
		&trade.OrderItem{},
		&trade.Invoice{},
	); err != nil {
		return err
	}

	uniqueIndexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_live ON users (email) WHERE deleted_at IS NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_warehouses_company_name_live ON warehouses (company_id, name) WHERE deleted_at IS NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_company_number_live ON orders (company_id, order_number) WHERE deleted_at IS NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_invoices_company_number_live ON invoices (company_id, invoice_number) WHERE deleted_at IS NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_order_items_order_product_live ON order_items (order_id, product_id) WHERE deleted_at IS NULL",
	}
	for _, stmt := range uniqueIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
