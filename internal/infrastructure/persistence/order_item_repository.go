package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
)

// GormOrderItemRepository implements OrderItemRepository using GORM.
// Order items carry no company column, so tenant scoping always walks
// through the owning order; the join excludes soft-deleted orders so an
// item under a deleted order is invisible to tenant-scoped callers.
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewGormOrderItemRepository creates a new GormOrderItemRepository
func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// FindAll returns items whose order belongs to the company, or every live
// item when companyID is zero (internal use).
func (r *GormOrderItemRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]trade.OrderItem, error) {
	var items []trade.OrderItem

	query := r.db.WithContext(ctx).Model(&trade.OrderItem{})
	if companyID != uuid.Nil {
		query = query.
			Joins("INNER JOIN orders ON orders.id = order_items.order_id").
			Where("orders.company_id = ? AND orders.deleted_at IS NULL", companyID)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID returns the item after the transitive tenant check
func (r *GormOrderItemRepository) FindByID(ctx context.Context, id, companyID uuid.UUID) (*trade.OrderItem, error) {
	var item trade.OrderItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundError("OrderItem")
		}
		return nil, err
	}

	if companyID != uuid.Nil {
		var order trade.Order
		err := r.db.WithContext(ctx).
			Select("company_id").
			First(&order, "id = ?", item.OrderID).Error
		if err != nil || order.CompanyID != companyID {
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			return nil, shared.AccessDeniedError("order items")
		}
	}

	return &item, nil
}

// ExistsForProduct checks the (order, product) uniqueness pair
func (r *GormOrderItemRepository) ExistsForProduct(ctx context.Context, orderID, productID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.OrderItem{}).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an order item
func (r *GormOrderItemRepository) Save(ctx context.Context, item *trade.OrderItem) error {
	err := r.db.WithContext(ctx).Save(item).Error
	return translateDuplicate(err, "Order item already exists for this product in this order")
}

// UpdateFields applies a partial update to an order item
func (r *GormOrderItemRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&trade.OrderItem{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteByID soft-deletes an order item after the transitive tenant check
func (r *GormOrderItemRepository) DeleteByID(ctx context.Context, id, companyID uuid.UUID) error {
	item, err := r.FindByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(item).Error
}

// Ensure GormOrderItemRepository implements OrderItemRepository
var _ trade.OrderItemRepository = (*GormOrderItemRepository)(nil)
