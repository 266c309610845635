package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/infrastructure/auth"
)

// UserService handles user management within a company
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns all users of the actor's company
func (s *UserService) List(ctx context.Context, actor identity.Actor) ([]UserResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindAll(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses, nil
}

// GetByID returns a single user of the actor's company
func (s *UserService) GetByID(ctx context.Context, actor identity.Actor, id uuid.UUID) (*UserResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Update applies a partial update to a user. Uniqueness is only
// re-checked for fields that actually change, so re-submitting the
// current values is a no-op rather than a conflict.
func (s *UserService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	if err := identity.Authorize(actor, identity.OperationWrite); err != nil {
		return nil, err
	}

	current, err := s.userRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}

	if req.Username != nil && *req.Username != current.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, actor.CompanyID, *req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.ConflictError("Username already exists in your company")
		}
		fields["username"] = *req.Username
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != current.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.ConflictError("Email already in use")
			}
			fields["email"] = email
		}
	}

	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid password")
		}
		fields["password"] = hash
	}

	if req.Role != nil && identity.Role(*req.Role) != current.Role {
		if !identity.Role(*req.Role).IsValid() {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid role")
		}
		fields["role"] = *req.Role
	}

	if len(fields) > 0 {
		fields["modified_by"] = actor.ID
		if err := s.userRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := s.userRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(updated)
	return &response, nil
}

// Delete soft-deletes a user of the actor's company
func (s *UserService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if err := identity.Authorize(actor, identity.OperationDelete); err != nil {
		return err
	}
	return s.userRepo.DeleteByID(ctx, id, actor.CompanyID)
}
