package shared

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseEntity provides common persistence fields for all entities.
// Deletion is always logical: DeletedAt is set instead of removing the row,
// and GORM excludes soft-deleted rows from every normal query.
type BaseEntity struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"not null" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// NewBaseEntity creates a new base entity with a generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// TenantEntity provides common fields for company-owned entities.
// Every row carries the owning company's ID and the user who last modified it.
type TenantEntity struct {
	BaseEntity
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
	ModifiedBy uuid.UUID `gorm:"type:uuid;not null" json:"modifiedBy"`
}

// NewTenantEntity creates a new tenant-scoped entity
func NewTenantEntity(companyID, modifiedBy uuid.UUID) TenantEntity {
	return TenantEntity{
		BaseEntity: NewBaseEntity(),
		CompanyID:  companyID,
		ModifiedBy: modifiedBy,
	}
}

// OwnerCompanyID returns the ID of the company that owns this row
func (e *TenantEntity) OwnerCompanyID() uuid.UUID {
	return e.CompanyID
}

// TenantOwned is implemented by every entity that belongs to a company.
// The tenant-scoped store uses it to enforce ownership on reads and writes.
type TenantOwned interface {
	OwnerCompanyID() uuid.UUID
}
