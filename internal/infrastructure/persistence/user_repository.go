package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/shared"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	TenantStore[identity.User, *identity.User]
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{
		TenantStore: NewTenantStore[identity.User, *identity.User](db, "User", "users"),
	}
}

// Save inserts or updates a user, mapping a unique email index
// violation to the same Conflict the pre-checks produce
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	return translateDuplicate(r.TenantStore.Save(ctx, user), "Email already in use")
}

// FindByEmail finds a user by email across all companies.
// Email is globally unique, so this is the login lookup.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user identity.User
	if err := r.DB().WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundError("User")
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail checks global email uniqueness
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.DB().WithContext(ctx).
		Model(&identity.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByUsername checks username uniqueness within a company
func (r *GormUserRepository) ExistsByUsername(ctx context.Context, companyID uuid.UUID, username string) (bool, error) {
	var count int64
	if err := r.DB().WithContext(ctx).
		Model(&identity.User{}).
		Where("company_id = ? AND username = ?", companyID, username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormUserRepository implements UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)
