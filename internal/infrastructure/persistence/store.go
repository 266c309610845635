package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ims/backend/internal/domain/shared"
)

// tenantOwnedPtr constrains PT to be a pointer to T that can report its
// owning company. It lets the generic store run the ownership check
// without reflection.
type tenantOwnedPtr[T any] interface {
	*T
	shared.TenantOwned
}

// TenantStore is the shared tenant-scoped data access implementation.
// Company-owned entity repositories embed one and add their
// entity-specific queries on top.
//
// A zero companyID bypasses tenant filtering and is reserved for
// internal service-level calls.
type TenantStore[T any, PT tenantOwnedPtr[T]] struct {
	db         *gorm.DB
	entityName string // singular, for NotFound messages ("Warehouse")
	collection string // plural, for Forbidden messages ("warehouses")
}

// NewTenantStore creates a tenant-scoped store for one entity type
func NewTenantStore[T any, PT tenantOwnedPtr[T]](db *gorm.DB, entityName, collection string) TenantStore[T, PT] {
	return TenantStore[T, PT]{db: db, entityName: entityName, collection: collection}
}

// DB exposes the underlying connection for entity-specific queries
func (s *TenantStore[T, PT]) DB() *gorm.DB {
	return s.db
}

// FindAll returns all live rows, filtered to the company when companyID is set
func (s *TenantStore[T, PT]) FindAll(ctx context.Context, companyID uuid.UUID) ([]T, error) {
	query := s.db.WithContext(ctx).Model(new(T))
	if companyID != uuid.Nil {
		query = query.Where("company_id = ?", companyID)
	}

	var entities []T
	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindByID returns the live row with the given ID. A missing or
// soft-deleted row is NotFound; a row owned by another company is
// Forbidden. NotFound is checked first so a cross-tenant caller cannot
// distinguish "never existed" from "deleted".
func (s *TenantStore[T, PT]) FindByID(ctx context.Context, id, companyID uuid.UUID) (*T, error) {
	var entity T
	if err := s.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundError(s.entityName)
		}
		return nil, err
	}

	if companyID != uuid.Nil && PT(&entity).OwnerCompanyID() != companyID {
		return nil, shared.AccessDeniedError(s.collection)
	}
	return &entity, nil
}

// Save inserts or updates the full entity row
func (s *TenantStore[T, PT]) Save(ctx context.Context, entity *T) error {
	return s.db.WithContext(ctx).Save(entity).Error
}

// UpdateFields applies a partial update. Only the supplied columns change;
// GORM stamps updated_at automatically.
func (s *TenantStore[T, PT]) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields).Error
}

// DeleteByID soft-deletes the row after the same ownership check as FindByID
func (s *TenantStore[T, PT]) DeleteByID(ctx context.Context, id, companyID uuid.UUID) error {
	entity, err := s.FindByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(entity).Error
}

// translateDuplicate maps a storage-level unique constraint violation to
// the same Conflict error class as the application-level pre-check. The
// pre-checks race under concurrency; the constraint is the source of truth.
func translateDuplicate(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return shared.ConflictError(message)
	}
	return err
}
