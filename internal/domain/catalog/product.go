package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ims/backend/internal/domain/shared"
)

// ProductKind is the physical form of a product. Warehouses declare which
// kinds they support; the inventory ledger guards that relationship.
type ProductKind string

const (
	ProductKindSolid  ProductKind = "solid"
	ProductKindLiquid ProductKind = "liquid"
)

// IsValid reports whether the product kind is known
func (k ProductKind) IsValid() bool {
	return k == ProductKindSolid || k == ProductKindLiquid
}

// Product represents a sellable or purchasable item of a company
type Product struct {
	shared.TenantEntity
	Name  string          `gorm:"type:varchar(200);not null" json:"name"`
	Price decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Type  ProductKind     `gorm:"type:varchar(20);not null" json:"type"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(companyID uuid.UUID, name string, price decimal.Decimal, kind ProductKind, modifiedBy uuid.UUID) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Product name cannot exceed 200 characters")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Product price cannot be negative")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid product type")
	}

	return &Product{
		TenantEntity: shared.NewTenantEntity(companyID, modifiedBy),
		Name:         strings.TrimSpace(name),
		Price:        price,
		Type:         kind,
	}, nil
}

// ProductRepository persists products
type ProductRepository interface {
	shared.TenantRepository[Product]
}
