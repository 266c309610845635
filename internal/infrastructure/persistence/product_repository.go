package persistence

import (
	"gorm.io/gorm"

	"github.com/ims/backend/internal/domain/catalog"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	TenantStore[catalog.Product, *catalog.Product]
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{
		TenantStore: NewTenantStore[catalog.Product, *catalog.Product](db, "Product", "products"),
	}
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
