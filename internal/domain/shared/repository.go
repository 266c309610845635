package shared

import (
	"context"

	"github.com/google/uuid"
)

// TenantRepository is the data-access contract every company-owned entity
// repository must satisfy. A zero (uuid.Nil) companyID means unrestricted
// access and is reserved for internal service-level calls; any non-zero
// companyID scopes the operation to that company:
//
//   - FindAll returns only rows owned by the company.
//   - FindByID returns ErrNotFound when no live row matches the ID, and a
//     Forbidden error when the row exists but belongs to another company.
//   - DeleteByID soft-deletes after running the same ownership check.
type TenantRepository[T any] interface {
	FindAll(ctx context.Context, companyID uuid.UUID) ([]T, error)
	FindByID(ctx context.Context, id, companyID uuid.UUID) (*T, error)
	Save(ctx context.Context, entity *T) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteByID(ctx context.Context, id, companyID uuid.UUID) error
}
