package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/shared"
)

// GormCompanyRepository implements CompanyRepository using GORM.
// Companies are the tenancy root and carry no company_id column of their
// own, so they do not go through the generic tenant store.
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by its ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	var company identity.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundError("Company")
		}
		return nil, err
	}
	return &company, nil
}

// Save creates or updates a company
func (r *GormCompanyRepository) Save(ctx context.Context, company *identity.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// UpdateFields applies a partial update to a company
func (r *GormCompanyRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&identity.Company{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteByID soft-deletes a company
func (r *GormCompanyRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	company, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(company).Error
}

// Ensure GormCompanyRepository implements CompanyRepository
var _ identity.CompanyRepository = (*GormCompanyRepository)(nil)
