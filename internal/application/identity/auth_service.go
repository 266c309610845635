package identity

import (
	"context"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/infrastructure/auth"
)

// AuthService handles sign-up and login
type AuthService struct {
	registration identity.RegistrationScope
	userRepo     identity.UserRepository
	jwtService   *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(registration identity.RegistrationScope, userRepo identity.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		registration: registration,
		userRepo:     userRepo,
		jwtService:   jwtService,
	}
}

// RegisterCompany creates a new company together with its owner account
// and logs the owner in. Company and owner are written in one
// transaction; a failure leaves neither behind.
func (s *AuthService) RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (*LoginResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ConflictError("Email already in use")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid password")
	}

	var owner *identity.User
	err = s.registration.Execute(ctx, func(companies identity.CompanyRepository, users identity.UserRepository) error {
		company, err := identity.NewCompany(req.CompanyName)
		if err != nil {
			return err
		}
		if err := companies.Save(ctx, company); err != nil {
			return err
		}

		user, err := identity.NewUser(company.ID, req.Username, req.Email, hash, identity.RoleOwner, company.ModifiedBy)
		if err != nil {
			return err
		}
		// The owner is their own creator
		user.ModifiedBy = user.ID
		if err := users.Save(ctx, user); err != nil {
			return err
		}

		company.ModifiedBy = user.ID
		if err := companies.Save(ctx, company); err != nil {
			return err
		}

		owner = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.issueToken(owner)
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if shared.IsNotFound(err) {
			// Same error for unknown email and wrong password
			return nil, shared.NewDomainError(shared.CodeUnauthorized, "Invalid credentials")
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Invalid credentials")
	}

	return s.issueToken(user)
}

// RegisterUser adds a user to the caller's company. Only owners may
// create accounts, and the new user always lands in the owner's own
// company regardless of what the request claims.
func (s *AuthService) RegisterUser(ctx context.Context, actor identity.Actor, req RegisterUserRequest) (*UserResponse, error) {
	if actor.Role != identity.RoleOwner {
		return nil, shared.NewDomainError(shared.CodeForbidden, "Only owners can register users")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ConflictError("Email already in use")
	}

	exists, err = s.userRepo.ExistsByUsername(ctx, actor.CompanyID, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ConflictError("Username already exists in your company")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid password")
	}

	user, err := identity.NewUser(actor.CompanyID, req.Username, req.Email, hash, identity.Role(req.Role), actor.ID)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

func (s *AuthService) issueToken(user *identity.User) (*LoginResponse, error) {
	token, err := s.jwtService.GenerateToken(user.ID, user.CompanyID, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User:        ToUserResponse(user),
	}, nil
}
