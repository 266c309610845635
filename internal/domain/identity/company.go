package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/shared"
)

// Company is the root of tenancy. Every other entity in the system carries
// a company ID and is isolated to it.
type Company struct {
	shared.BaseEntity
	Name       string    `gorm:"type:varchar(200);not null" json:"name"`
	ModifiedBy uuid.UUID `gorm:"type:uuid" json:"modifiedBy"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new company
func NewCompany(name string) (*Company, error) {
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}
	return &Company{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
	}, nil
}

// Rename changes the company name
func (c *Company) Rename(name string, actorID uuid.UUID) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	c.ModifiedBy = actorID
	c.UpdatedAt = time.Now()
	return nil
}

func validateCompanyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Company name cannot exceed 200 characters")
	}
	return nil
}
