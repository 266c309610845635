package identity

import (
	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/shared"
)

// Role represents a user's role within their company
type Role string

const (
	RoleOwner    Role = "owner"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleOperator, RoleViewer:
		return true
	default:
		return false
	}
}

// Operation classifies what an actor is trying to do. The authorization
// policy is a pure function of (role, operation); it never inspects data.
type Operation string

const (
	OperationRead   Operation = "read"
	OperationWrite  Operation = "write"
	OperationDelete Operation = "delete"
)

// Can evaluates the role-to-operation matrix:
// read is open to all roles, write to operator and owner, delete to owner only.
func Can(role Role, op Operation) bool {
	switch op {
	case OperationRead:
		return role == RoleOwner || role == RoleOperator || role == RoleViewer
	case OperationWrite:
		return role == RoleOwner || role == RoleOperator
	case OperationDelete:
		return role == RoleOwner
	default:
		return false
	}
}

// Actor is the already-authenticated caller of an operation. The domain
// trusts this triple completely; token verification happens upstream.
type Actor struct {
	ID        uuid.UUID
	Role      Role
	CompanyID uuid.UUID
}

// Authorize returns a Forbidden error when the actor's role does not
// permit the operation. It is evaluated before any store access so a
// denied call never touches data.
func Authorize(actor Actor, op Operation) error {
	if !Can(actor.Role, op) {
		return shared.NewDomainError(shared.CodeForbidden, "Your role does not allow this operation")
	}
	return nil
}
