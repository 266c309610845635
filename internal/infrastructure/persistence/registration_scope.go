package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/ims/backend/internal/domain/identity"
)

// GormRegistrationScope implements identity.RegistrationScope. The
// callback receives repositories bound to the transaction handle, so
// every write inside commits or rolls back as one unit.
type GormRegistrationScope struct {
	db *gorm.DB
}

// NewGormRegistrationScope creates a new GormRegistrationScope
func NewGormRegistrationScope(db *gorm.DB) *GormRegistrationScope {
	return &GormRegistrationScope{db: db}
}

// Execute runs fn inside a database transaction
func (s *GormRegistrationScope) Execute(ctx context.Context, fn func(companies identity.CompanyRepository, users identity.UserRepository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormCompanyRepository(tx), NewGormUserRepository(tx))
	})
}

var _ identity.RegistrationScope = (*GormRegistrationScope)(nil)
