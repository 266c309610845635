package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/shared"
)

// CompanyRepository persists companies. Companies are their own tenant,
// so the generic tenant contract does not apply; the scoping rule is
// "a company can only read itself".
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	Save(ctx context.Context, company *Company) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// UserRepository persists users
type UserRepository interface {
	shared.TenantRepository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, companyID uuid.UUID, username string) (bool, error)
}

// RegistrationScope runs company and user writes in one database
// transaction. Signing up creates a company and its owner together;
// neither row may exist without the other.
type RegistrationScope interface {
	Execute(ctx context.Context, fn func(companies CompanyRepository, users UserRepository) error) error
}
