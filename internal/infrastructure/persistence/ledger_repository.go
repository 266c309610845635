package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/shared"
)

// signedQuantity is the ledger's stock expression: deliveries add,
// shipments subtract. Reused verbatim in SELECT and HAVING because the
// alias is not visible to HAVING on every engine.
const signedQuantity = "SUM(CASE WHEN orders.type = 'delivery' THEN order_items.quantity ELSE -order_items.quantity END)"

// GormLedgerRepository implements LedgerRepository using GORM.
// Stock is never stored; every figure is a signed sum over live order
// items joined through live orders, products and warehouses.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// StockFor computes current stock for a warehouse/product pair
func (r *GormLedgerRepository) StockFor(ctx context.Context, warehouseID, productID uuid.UUID) (int64, error) {
	var row struct {
		Stock int64
	}

	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("COALESCE("+signedQuantity+", 0) AS stock").
		Joins("INNER JOIN orders ON orders.id = order_items.order_id").
		Joins("INNER JOIN products ON products.id = order_items.product_id").
		Joins("INNER JOIN warehouses ON warehouses.id = orders.warehouse_id").
		Where("orders.warehouse_id = ? AND order_items.product_id = ?", warehouseID, productID).
		Where("order_items.deleted_at IS NULL AND orders.deleted_at IS NULL").
		Where("products.deleted_at IS NULL AND warehouses.deleted_at IS NULL").
		Scan(&row).Error
	if err != nil {
		return 0, err
	}
	return row.Stock, nil
}

// HasOrderItems reports whether any live order item references the
// warehouse within the company. Existence, not net stock: a warehouse
// whose deliveries and shipments cancel out still blocks support-type
// changes, because its history is tied to the current type.
func (r *GormLedgerRepository) HasOrderItems(ctx context.Context, warehouseID, companyID uuid.UUID) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Table("order_items").
		Joins("INNER JOIN orders ON orders.id = order_items.order_id").
		Where("orders.warehouse_id = ? AND orders.company_id = ?", warehouseID, companyID).
		Where("order_items.deleted_at IS NULL AND orders.deleted_at IS NULL").
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HighestStockProduct returns the top (warehouse, product) group with
// positive stock. Warehouse name ascending is the primary sort key and
// decides ties in stock; this ordering is part of the contract.
func (r *GormLedgerRepository) HighestStockProduct(ctx context.Context, companyID uuid.UUID) (*inventory.HighestStockResult, error) {
	var row struct {
		WarehouseName string
		ProductName   string
		CurrentStock  int64
	}

	query := r.db.WithContext(ctx).
		Table("order_items").
		Select("warehouses.name AS warehouse_name, products.name AS product_name, "+signedQuantity+" AS current_stock").
		Joins("INNER JOIN orders ON orders.id = order_items.order_id").
		Joins("INNER JOIN warehouses ON warehouses.id = orders.warehouse_id").
		Joins("INNER JOIN products ON products.id = order_items.product_id").
		Where("order_items.deleted_at IS NULL AND orders.deleted_at IS NULL").
		Where("warehouses.deleted_at IS NULL AND products.deleted_at IS NULL")

	if companyID != uuid.Nil {
		query = query.Where("warehouses.company_id = ?", companyID)
	}

	result := query.
		Group("warehouses.name, products.name").
		Having(signedQuantity + " > 0").
		Order("warehouses.name ASC").
		Order("current_stock DESC").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.NewDomainError(shared.CodeNotFound, "No product with stock found")
	}

	return &inventory.HighestStockResult{
		WarehouseName: row.WarehouseName,
		ProductName:   row.ProductName,
		CurrentStock:  row.CurrentStock,
	}, nil
}

// BestSellingProduct returns the product with the highest total ordered
// quantity within the company, or nil when the company has no order items.
func (r *GormLedgerRepository) BestSellingProduct(ctx context.Context, companyID uuid.UUID) (*inventory.BestSellingProductResult, error) {
	var row struct {
		ProductName string
		Price       decimal.Decimal
		CompanyName string
		TotalSold   int64
	}

	result := r.db.WithContext(ctx).
		Table("order_items").
		Select("products.name AS product_name, products.price AS price, companies.name AS company_name, SUM(order_items.quantity) AS total_sold").
		Joins("INNER JOIN orders ON orders.id = order_items.order_id").
		Joins("INNER JOIN products ON products.id = order_items.product_id").
		Joins("INNER JOIN companies ON companies.id = products.company_id").
		Where("orders.company_id = ?", companyID).
		Where("order_items.deleted_at IS NULL AND orders.deleted_at IS NULL").
		Where("products.deleted_at IS NULL AND companies.deleted_at IS NULL").
		Group("products.id, products.name, products.price, companies.name").
		Order("total_sold DESC").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return &inventory.BestSellingProductResult{
		ProductName: row.ProductName,
		Price:       row.Price.StringFixed(2),
		CompanyName: row.CompanyName,
		TotalSold:   row.TotalSold,
	}, nil
}

// CustomerWithMostOrders returns the customer partner with the most orders
// within the company, or nil when the company has no customer orders.
// Items on soft-deleted order items do not count toward the item total,
// but the LEFT JOIN keeps orders without items in the order count.
func (r *GormLedgerRepository) CustomerWithMostOrders(ctx context.Context, companyID uuid.UUID) (*inventory.CustomerWithMostOrdersResult, error) {
	var row struct {
		CustomerName     string
		CompanyName      string
		TotalOrders      int64
		TotalItemsBought int64
	}

	result := r.db.WithContext(ctx).
		Table("orders").
		Select("business_partners.name AS customer_name, companies.name AS company_name, COUNT(DISTINCT orders.id) AS total_orders, COALESCE(SUM(order_items.quantity), 0) AS total_items_bought").
		Joins("INNER JOIN business_partners ON business_partners.id = orders.business_partner_id").
		Joins("INNER JOIN companies ON companies.id = orders.company_id").
		Joins("LEFT JOIN order_items ON order_items.order_id = orders.id AND order_items.deleted_at IS NULL").
		Where("orders.company_id = ? AND business_partners.type = ?", companyID, "customer").
		Where("orders.deleted_at IS NULL AND business_partners.deleted_at IS NULL AND companies.deleted_at IS NULL").
		Group("business_partners.id, business_partners.name, companies.name").
		Order("total_orders DESC").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return &inventory.CustomerWithMostOrdersResult{
		CustomerName:     row.CustomerName,
		CompanyName:      row.CompanyName,
		TotalOrders:      row.TotalOrders,
		TotalItemsBought: row.TotalItemsBought,
	}, nil
}

// Ensure GormLedgerRepository implements LedgerRepository
var _ inventory.LedgerRepository = (*GormLedgerRepository)(nil)
