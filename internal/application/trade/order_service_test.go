package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ims/backend/internal/domain/catalog"
	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]trade.Order, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id, companyID uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteByID(ctx context.Context, id, companyID uuid.UUID) error {
	args := m.Called(ctx, id, companyID)
	return args.Error(0)
}

func (m *MockOrderRepository) ExistsByNumber(ctx context.Context, companyID uuid.UUID, orderNumber string) (bool, error) {
	args := m.Called(ctx, companyID, orderNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) CreateWithInvoice(ctx context.Context, order *trade.Order, invoice *trade.Invoice) error {
	args := m.Called(ctx, order, invoice)
	return args.Error(0)
}

var _ trade.OrderRepository = (*MockOrderRepository)(nil)

// MockOrderItemRepository is a mock implementation of OrderItemRepository
type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]trade.OrderItem, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]trade.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) FindByID(ctx context.Context, id, companyID uuid.UUID) (*trade.OrderItem, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) ExistsForProduct(ctx context.Context, orderID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, orderID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderItemRepository) Save(ctx context.Context, item *trade.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderItemRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockOrderItemRepository) DeleteByID(ctx context.Context, id, companyID uuid.UUID) error {
	args := m.Called(ctx, id, companyID)
	return args.Error(0)
}

var _ trade.OrderItemRepository = (*MockOrderItemRepository)(nil)

// MockWarehouseRepository is a mock implementation of WarehouseRepository
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]inventory.Warehouse, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindByID(ctx context.Context, id, companyID uuid.UUID) (*inventory.Warehouse, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Save(ctx context.Context, warehouse *inventory.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockWarehouseRepository) DeleteByID(ctx context.Context, id, companyID uuid.UUID) error {
	args := m.Called(ctx, id, companyID)
	return args.Error(0)
}

func (m *MockWarehouseRepository) ExistsByName(ctx context.Context, companyID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, companyID, name)
	return args.Bool(0), args.Error(1)
}

var _ inventory.WarehouseRepository = (*MockWarehouseRepository)(nil)

// MockBusinessPartnerRepository is a mock implementation of BusinessPartnerRepository
type MockBusinessPartnerRepository struct {
	mock.Mock
}

func (m *MockBusinessPartnerRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]partner.BusinessPartner, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]partner.BusinessPartner), args.Error(1)
}

func (m *MockBusinessPartnerRepository) FindByID(ctx context.Context, id, companyID uuid.UUID) (*partner.BusinessPartner, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.BusinessPartner), args.Error(1)
}

func (m *MockBusinessPartnerRepository) Save(ctx context.Context, p *partner.BusinessPartner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockBusinessPartnerRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockBusinessPartnerRepository) DeleteByID(ctx context.Context, id, companyID uuid.UUID) error {
	args := m.Called(ctx, id, companyID)
	return args.Error(0)
}

var _ partner.BusinessPartnerRepository = (*MockBusinessPartnerRepository)(nil)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id, companyID uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id, companyID uuid.UUID) error {
	args := m.Called(ctx, id, companyID)
	return args.Error(0)
}

var _ catalog.ProductRepository = (*MockProductRepository)(nil)

// =============================================================================
// Fixtures
// =============================================================================

func newTestActor(role identity.Role) identity.Actor {
	return identity.Actor{
		ID:        uuid.New(),
		Role:      role,
		CompanyID: uuid.New(),
	}
}

func newTestWarehouse(companyID uuid.UUID) *inventory.Warehouse {
	w, _ := inventory.NewWarehouse(companyID, "Main Depot", inventory.SupportTypeMixed, uuid.New())
	return w
}

func newTestPartner(companyID uuid.UUID) *partner.BusinessPartner {
	p, _ := partner.NewBusinessPartner(companyID, "Acme Ltd", "acme@example.com", partner.PartnerTypeCustomer, uuid.New())
	return p
}

func newTestProduct(companyID uuid.UUID) *catalog.Product {
	p, _ := catalog.NewProduct(companyID, "Bolts", decimal.NewFromFloat(2.50), catalog.ProductKindSolid, uuid.New())
	return p
}

func newTestOrder(companyID, warehouseID, partnerID uuid.UUID) *trade.Order {
	o, _ := trade.NewOrder(companyID, warehouseID, partnerID, "ORD-001", trade.OrderTypeDelivery, uuid.New())
	return o
}

// =============================================================================
// Order service tests
// =============================================================================

func TestOrderService_Create_Success(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockWarehouses := new(MockWarehouseRepository)
	mockPartners := new(MockBusinessPartnerRepository)
	service := NewOrderService(mockOrders, mockWarehouses, mockPartners)

	ctx := context.Background()
	actor := newTestActor(identity.RoleOperator)
	warehouse := newTestWarehouse(actor.CompanyID)
	bp := newTestPartner(actor.CompanyID)
	req := CreateOrderRequest{
		WarehouseID:       warehouse.ID,
		BusinessPartnerID: bp.ID,
		OrderNumber:       "ORD-001",
		Type:              "delivery",
	}

	mockWarehouses.On("FindByID", ctx, warehouse.ID, actor.CompanyID).Return(warehouse, nil)
	mockPartners.On("FindByID", ctx, bp.ID, actor.CompanyID).Return(bp, nil)
	mockOrders.On("CreateWithInvoice", ctx, mock.AnythingOfType("*trade.Order"), mock.AnythingOfType("*trade.Invoice")).Return(nil)

	result, err := service.Create(ctx, actor, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "ORD-001", result.OrderNumber)
	assert.Equal(t, "delivery", result.Type)
	assert.Equal(t, actor.CompanyID, result.CompanyID)

	// The invoice is derived from the order inside the same call
	invoice := mockOrders.Calls[0].Arguments.Get(2).(*trade.Invoice)
	order := mockOrders.Calls[0].Arguments.Get(1).(*trade.Order)
	assert.Equal(t, order.ID, invoice.OrderID)
	assert.Equal(t, actor.CompanyID, invoice.CompanyID)
	mockOrders.AssertExpectations(t)
	mockWarehouses.AssertExpectations(t)
	mockPartners.AssertExpectations(t)
}

func TestOrderService_Create_WarehouseNotFound(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockWarehouses := new(MockWarehouseRepository)
	mockPartners := new(MockBusinessPartnerRepository)
	service := NewOrderService(mockOrders, mockWarehouses, mockPartners)

	ctx := context.Background()
	actor := newTestActor(identity.RoleOwner)
	req := CreateOrderRequest{
		WarehouseID:       uuid.New(),
		BusinessPartnerID: uuid.New(),
		OrderNumber:       "ORD-001",
		Type:              "shipment",
	}

	mockWarehouses.On("FindByID", ctx, req.WarehouseID, actor.CompanyID).Return(nil, shared.NotFoundError("Warehouse"))

	result, err := service.Create(ctx, actor, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, shared.IsNotFound(err))
	mockOrders.AssertNotCalled(t, "CreateWithInvoice")
}

func TestOrderService_Create_ForeignWarehouseForbidden(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockWarehouses := new(MockWarehouseRepository)
	mockPartners := new(MockBusinessPartnerRepository)
	service := NewOrderService(mockOrders, mockWarehouses, mockPartners)

	ctx := context.Background()
	actor := newTestActor(identity.RoleOwner)
	req := CreateOrderRequest{
		WarehouseID:       uuid.New(),
		BusinessPartnerID: uuid.New(),
		OrderNumber:       "ORD-001",
		Type:              "shipment",
	}

	mockWarehouses.On("FindByID", ctx, req.WarehouseID, actor.CompanyID).Return(nil, shared.AccessDeniedError("warehouses"))

	result, err := service.Create(ctx, actor, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, shared.IsForbidden(err))
	mockOrders.AssertNotCalled(t, "CreateWithInvoice")
}

func TestOrderService_Update_SameNumberSkipsUniquenessCheck(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockWarehouses := new(MockWarehouseRepository)
	mockPartners := new(MockBusinessPartnerRepository)
	service := NewOrderService(mockOrders, mockWarehouses, mockPartners)

	ctx := context.Background()
	actor := newTestActor(identity.RoleOperator)
	order := newTestOrder(actor.CompanyID, uuid.New(), uuid.New())
	sameNumber := "ORD-001"

	mockOrders.On("FindByID", ctx, order.ID, actor.CompanyID).Return(order, nil)

	result, err := service.Update(ctx, actor, order.ID, UpdateOrderRequest{OrderNumber: &sameNumber})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	mockOrders.AssertNotCalled(t, "ExistsByNumber")
	mockOrders.AssertNotCalled(t, "UpdateFields")
	mockOrders.AssertExpectations(t)
}

func TestOrderService_Update_NewNumberConflict(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockWarehouses := new(MockWarehouseRepository)
	mockPartners := new(MockBusinessPartnerRepository)
	service := NewOrderService(mockOrders, mockWarehouses, mockPartners)

	ctx := context.Background()
	actor := newTestActor(identity.RoleOwner)
	order := newTestOrder(actor.CompanyID, uuid.New(), uuid.New())
	newNumber := "ORD-002"

	mockOrders.On("FindByID", ctx, order.ID, actor.CompanyID).Return(order, nil)
	mockOrders.On("ExistsByNumber", ctx, actor.CompanyID, "ORD-002").Return(true, nil)

	result, err := service.Update(ctx, actor, order.ID, UpdateOrderRequest{OrderNumber: &newNumber})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, shared.IsConflict(err))
	mockOrders.AssertNotCalled(t, "UpdateFields")
	mockOrders.AssertExpectations(t)
}

func TestOrderService_Update_NewWarehouseValidated(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockWarehouses := new(MockWarehouseRepository)
	mockPartners := new(MockBusinessPartnerRepository)
	service := NewOrderService(mockOrders, mockWarehouses, mockPartners)

	ctx := context.Background()
	actor := newTestActor(identity.RoleOperator)
	order := newTestOrder(actor.CompanyID, uuid.New(), uuid.New())
	newWarehouse := newTestWarehouse(actor.CompanyID)

	mockOrders.On("FindByID", ctx, order.ID, actor.CompanyID).Return(order, nil)
	mockWarehouses.On("FindByID", ctx, newWarehouse.ID, actor.CompanyID).Return(newWarehouse, nil)
	mockOrders.On("UpdateFields", ctx, order.ID, mock.MatchedBy(func(fields map[string]any) bool {
		return fields["warehouse_id"] == newWarehouse.ID && fields["modified_by"] == actor.ID
	})).Return(nil)

	result, err := service.Update(ctx, actor, order.ID, UpdateOrderRequest{WarehouseID: &newWarehouse.ID})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	mockOrders.AssertExpectations(t)
	mockWarehouses.AssertExpectations(t)
}

func TestOrderService_Delete_OwnerOnly(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockWarehouses := new(MockWarehouseRepository)
	mockPartners := new(MockBusinessPartnerRepository)
	service := NewOrderService(mockOrders, mockWarehouses, mockPartners)

	ctx := context.Background()
	operator := newTestActor(identity.RoleOperator)

	err := service.Delete(ctx, operator, uuid.New())

	assert.Error(t, err)
	assert.True(t, shared.IsForbidden(err))
	mockOrders.AssertNotCalled(t, "DeleteByID")

	owner := newTestActor(identity.RoleOwner)
	orderID := uuid.New()
	mockOrders.On("DeleteByID", ctx, orderID, owner.CompanyID).Return(nil)

	assert.NoError(t, service.Delete(ctx, owner, orderID))
	mockOrders.AssertExpectations(t)
}
