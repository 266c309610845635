package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/shared"
)

// SupportType declares which product kinds a warehouse can store
type SupportType string

const (
	SupportTypeSolid  SupportType = "solid"
	SupportTypeLiquid SupportType = "liquid"
	SupportTypeMixed  SupportType = "mixed"
)

// IsValid reports whether the support type is known
func (t SupportType) IsValid() bool {
	switch t {
	case SupportTypeSolid, SupportTypeLiquid, SupportTypeMixed:
		return true
	default:
		return false
	}
}

// Warehouse represents a storage location of a company.
// The name is unique within a company; the support type may not change
// while any order item is linked to the warehouse.
type Warehouse struct {
	shared.TenantEntity
	Name        string      `gorm:"type:varchar(200);not null" json:"name"`
	SupportType SupportType `gorm:"type:varchar(20);not null" json:"supportType"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new warehouse
func NewWarehouse(companyID uuid.UUID, name string, supportType SupportType, modifiedBy uuid.UUID) (*Warehouse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Warehouse name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Warehouse name cannot exceed 200 characters")
	}
	if !supportType.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid warehouse support type")
	}

	return &Warehouse{
		TenantEntity: shared.NewTenantEntity(companyID, modifiedBy),
		Name:         strings.TrimSpace(name),
		SupportType:  supportType,
	}, nil
}

// WarehouseRepository persists warehouses
type WarehouseRepository interface {
	shared.TenantRepository[Warehouse]
	ExistsByName(ctx context.Context, companyID uuid.UUID, name string) (bool, error)
}
