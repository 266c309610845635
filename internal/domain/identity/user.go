package identity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/shared"
)

// User represents an authenticated member of a company.
// Email is unique across all companies; the password is stored hashed.
type User struct {
	shared.TenantEntity
	Username string `gorm:"type:varchar(100);not null" json:"username"`
	Email    string `gorm:"type:varchar(200);not null;index" json:"email"`
	Password string `gorm:"type:varchar(200);not null" json:"-"`
	Role     Role   `gorm:"type:varchar(20);not null" json:"role"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user. The password must already be hashed;
// the domain never sees plaintext credentials.
func NewUser(companyID uuid.UUID, username, email, hashedPassword string, role Role, modifiedBy uuid.UUID) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateUserEmail(email); err != nil {
		return nil, err
	}
	if hashedPassword == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Password hash cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid role")
	}

	return &User{
		TenantEntity: shared.NewTenantEntity(companyID, modifiedBy),
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Password:     hashedPassword,
		Role:         role,
	}, nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Username cannot be empty")
	}
	if len(username) > 100 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Username cannot exceed 100 characters")
	}
	return nil
}

func validateUserEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Email cannot be empty")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return shared.NewDomainError(shared.CodeInvalidInput, "Invalid email format")
	}
	return nil
}
