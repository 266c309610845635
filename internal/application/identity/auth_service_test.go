package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/infrastructure/auth"
	"github.com/ims/backend/internal/infrastructure/config"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]identity.User, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id, companyID uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id, companyID uuid.UUID) error {
	args := m.Called(ctx, id, companyID)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, companyID uuid.UUID, username string) (bool, error) {
	args := m.Called(ctx, companyID, username)
	return args.Bool(0), args.Error(1)
}

var _ identity.UserRepository = (*MockUserRepository)(nil)

// MockCompanyRepository is a mock implementation of CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *identity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ identity.CompanyRepository = (*MockCompanyRepository)(nil)

// fakeRegistrationScope runs the registration callback against the given
// repositories without a real transaction.
type fakeRegistrationScope struct {
	companies identity.CompanyRepository
	users     identity.UserRepository
}

func (s *fakeRegistrationScope) Execute(ctx context.Context, fn func(identity.CompanyRepository, identity.UserRepository) error) error {
	return fn(s.companies, s.users)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-for-unit-tests",
		TokenExpiration: time.Hour,
		Issuer:          "ims-backend-test",
	})
}

func newTestActor(role identity.Role) identity.Actor {
	return identity.Actor{
		ID:        uuid.New(),
		Role:      role,
		CompanyID: uuid.New(),
	}
}

func newTestUser(companyID uuid.UUID, email, plainPassword string, role identity.Role) *identity.User {
	hash, _ := auth.HashPassword(plainPassword)
	user, _ := identity.NewUser(companyID, "tester", email, hash, role, uuid.New())
	return user
}

// =============================================================================
// Tests
// =============================================================================

func TestAuthService_RegisterCompany_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCompanies := new(MockCompanyRepository)
	scope := &fakeRegistrationScope{companies: mockCompanies, users: mockUsers}
	service := NewAuthService(scope, mockUsers, newTestJWTService())

	ctx := context.Background()
	req := RegisterCompanyRequest{
		CompanyName: "Acme Logistics",
		Username:    "founder",
		Email:       "founder@acme.test",
		Password:    "s3cret-password",
	}

	mockUsers.On("ExistsByEmail", ctx, req.Email).Return(false, nil)
	mockCompanies.On("Save", ctx, mock.AnythingOfType("*identity.Company")).Return(nil)
	mockUsers.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	result, err := service.RegisterCompany(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, "founder", result.User.Username)
	assert.Equal(t, string(identity.RoleOwner), result.User.Role)

	// The owner lands in the company created by the same call
	user := mockUsers.Calls[1].Arguments.Get(1).(*identity.User)
	company := mockCompanies.Calls[0].Arguments.Get(1).(*identity.Company)
	assert.Equal(t, company.ID, user.CompanyID)
	assert.Equal(t, user.ID, user.ModifiedBy)
	mockUsers.AssertExpectations(t)
	mockCompanies.AssertExpectations(t)
}

func TestAuthService_RegisterCompany_DuplicateEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCompanies := new(MockCompanyRepository)
	scope := &fakeRegistrationScope{companies: mockCompanies, users: mockUsers}
	service := NewAuthService(scope, mockUsers, newTestJWTService())

	ctx := context.Background()
	req := RegisterCompanyRequest{
		CompanyName: "Acme Logistics",
		Username:    "founder",
		Email:       "taken@acme.test",
		Password:    "s3cret-password",
	}

	mockUsers.On("ExistsByEmail", ctx, req.Email).Return(true, nil)

	result, err := service.RegisterCompany(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, shared.IsConflict(err))
	mockCompanies.AssertNotCalled(t, "Save")
	mockUsers.AssertNotCalled(t, "Save")
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewAuthService(nil, mockUsers, newTestJWTService())

	ctx := context.Background()
	user := newTestUser(uuid.New(), "user@acme.test", "correct-horse", identity.RoleOperator)

	mockUsers.On("FindByEmail", ctx, "user@acme.test").Return(user, nil)

	result, err := service.Login(ctx, LoginRequest{Email: "user@acme.test", Password: "correct-horse"})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, user.ID, result.User.ID)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewAuthService(nil, mockUsers, newTestJWTService())

	ctx := context.Background()
	user := newTestUser(uuid.New(), "user@acme.test", "correct-horse", identity.RoleOperator)

	mockUsers.On("FindByEmail", ctx, "user@acme.test").Return(user, nil)

	result, err := service.Login(ctx, LoginRequest{Email: "user@acme.test", Password: "wrong"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.EqualError(t, err, "Invalid credentials")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewAuthService(nil, mockUsers, newTestJWTService())

	ctx := context.Background()

	mockUsers.On("FindByEmail", ctx, "nobody@acme.test").Return(nil, shared.NotFoundError("User"))

	result, err := service.Login(ctx, LoginRequest{Email: "nobody@acme.test", Password: "whatever"})

	assert.Error(t, err)
	assert.Nil(t, result)
	// Indistinguishable from a wrong password
	assert.EqualError(t, err, "Invalid credentials")
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewAuthService(nil, mockUsers, newTestJWTService())

	ctx := context.Background()
	owner := newTestActor(identity.RoleOwner)
	req := RegisterUserRequest{
		Username: "clerk",
		Email:    "clerk@acme.test",
		Password: "s3cret-password",
		Role:     "operator",
	}

	mockUsers.On("ExistsByEmail", ctx, req.Email).Return(false, nil)
	mockUsers.On("ExistsByUsername", ctx, owner.CompanyID, req.Username).Return(false, nil)
	mockUsers.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	result, err := service.RegisterUser(ctx, owner, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "clerk", result.Username)
	assert.Equal(t, "operator", result.Role)
	assert.Equal(t, owner.CompanyID, result.CompanyID)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_RegisterUser_NonOwnerForbidden(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewAuthService(nil, mockUsers, newTestJWTService())

	ctx := context.Background()
	operator := newTestActor(identity.RoleOperator)
	req := RegisterUserRequest{
		Username: "clerk",
		Email:    "clerk@acme.test",
		Password: "s3cret-password",
		Role:     "viewer",
	}

	result, err := service.RegisterUser(ctx, operator, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, shared.IsForbidden(err))
	mockUsers.AssertNotCalled(t, "Save")
}

func TestAuthService_RegisterUser_DuplicateUsernameInCompany(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewAuthService(nil, mockUsers, newTestJWTService())

	ctx := context.Background()
	owner := newTestActor(identity.RoleOwner)
	req := RegisterUserRequest{
		Username: "clerk",
		Email:    "clerk@acme.test",
		Password: "s3cret-password",
		Role:     "operator",
	}

	mockUsers.On("ExistsByEmail", ctx, req.Email).Return(false, nil)
	mockUsers.On("ExistsByUsername", ctx, owner.CompanyID, req.Username).Return(true, nil)

	result, err := service.RegisterUser(ctx, owner, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, shared.IsConflict(err))
	mockUsers.AssertNotCalled(t, "Save")
}
