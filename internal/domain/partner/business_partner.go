package partner

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/shared"
)

// PartnerType distinguishes customers from suppliers
type PartnerType string

const (
	PartnerTypeCustomer PartnerType = "customer"
	PartnerTypeSupplier PartnerType = "supplier"
)

// IsValid reports whether the partner type is known
func (t PartnerType) IsValid() bool {
	return t == PartnerTypeCustomer || t == PartnerTypeSupplier
}

// BusinessPartner represents a customer or supplier of a company
type BusinessPartner struct {
	shared.TenantEntity
	Name  string      `gorm:"type:varchar(200);not null" json:"name"`
	Email string      `gorm:"type:varchar(200);not null" json:"email"`
	Type  PartnerType `gorm:"type:varchar(20);not null" json:"type"`
}

// TableName returns the table name for GORM
func (BusinessPartner) TableName() string {
	return "business_partners"
}

// NewBusinessPartner creates a new business partner
func NewBusinessPartner(companyID uuid.UUID, name, email string, partnerType PartnerType, modifiedBy uuid.UUID) (*BusinessPartner, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Business partner name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Business partner name cannot exceed 200 characters")
	}
	if !partnerType.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid business partner type")
	}

	return &BusinessPartner{
		TenantEntity: shared.NewTenantEntity(companyID, modifiedBy),
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Type:         partnerType,
	}, nil
}

// IsCustomer returns true if the partner is a customer
func (p *BusinessPartner) IsCustomer() bool {
	return p.Type == PartnerTypeCustomer
}

// BusinessPartnerRepository persists business partners
type BusinessPartnerRepository interface {
	shared.TenantRepository[BusinessPartner]
}
