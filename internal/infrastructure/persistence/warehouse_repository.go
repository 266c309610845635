package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ims/backend/internal/domain/inventory"
)

// GormWarehouseRepository implements WarehouseRepository using GORM
type GormWarehouseRepository struct {
	TenantStore[inventory.Warehouse, *inventory.Warehouse]
}

// NewGormWarehouseRepository creates a new GormWarehouseRepository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		TenantStore: NewTenantStore[inventory.Warehouse, *inventory.Warehouse](db, "Warehouse", "warehouses"),
	}
}

// ExistsByName checks if a warehouse with the given name exists in the company
func (r *GormWarehouseRepository) ExistsByName(ctx context.Context, companyID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.DB().WithContext(ctx).
		Model(&inventory.Warehouse{}).
		Where("company_id = ? AND name = ?", companyID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormWarehouseRepository implements WarehouseRepository
var _ inventory.WarehouseRepository = (*GormWarehouseRepository)(nil)
