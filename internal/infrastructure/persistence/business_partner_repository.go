package persistence

import (
	"gorm.io/gorm"

	"github.com/ims/backend/internal/domain/partner"
)

// GormBusinessPartnerRepository implements BusinessPartnerRepository using GORM
type GormBusinessPartnerRepository struct {
	TenantStore[partner.BusinessPartner, *partner.BusinessPartner]
}

// NewGormBusinessPartnerRepository creates a new GormBusinessPartnerRepository
func NewGormBusinessPartnerRepository(db *gorm.DB) *GormBusinessPartnerRepository {
	return &GormBusinessPartnerRepository{
		TenantStore: NewTenantStore[partner.BusinessPartner, *partner.BusinessPartner](db, "BusinessPartner", "business partners"),
	}
}

// Ensure GormBusinessPartnerRepository implements BusinessPartnerRepository
var _ partner.BusinessPartnerRepository = (*GormBusinessPartnerRepository)(nil)
