package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
)

func newOrder(t *testing.T, companyID uuid.UUID, number string, orderType trade.OrderType) *trade.Order {
	t.Helper()
	order, err := trade.NewOrder(companyID, uuid.New(), uuid.New(), number, orderType, uuid.New())
	require.NoError(t, err)
	return order
}

func countRows(t *testing.T, db *GormOrderRepository, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.DB().Model(model).Count(&count).Error)
	return count
}

func TestCreateWithInvoice_IssuesExactlyOneInvoice(t *testing.T) {
	db := newTestDB(t)
	orderRepo := NewGormOrderRepository(db)
	invoiceRepo := NewGormInvoiceRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	actorID := uuid.New()

	order := newOrder(t, companyID, "ORD-1", trade.OrderTypeDelivery)
	invoice := trade.NewInvoiceForOrder(order, actorID)

	require.NoError(t, orderRepo.CreateWithInvoice(ctx, order, invoice))

	invoices, err := invoiceRepo.FindAll(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-ORD-1", invoices[0].InvoiceNumber)
	assert.Equal(t, order.ID, invoices[0].OrderID)
	assert.Equal(t, companyID, invoices[0].CompanyID)
}

func TestCreateWithInvoice_DuplicateOrderNumberRollsBack(t *testing.T) {
	db := newTestDB(t)
	orderRepo := NewGormOrderRepository(db)
	ctx := context.Background()

	companyID := uuid.New()

	first := newOrder(t, companyID, "ORD-1", trade.OrderTypeDelivery)
	require.NoError(t, orderRepo.CreateWithInvoice(ctx, first, trade.NewInvoiceForOrder(first, uuid.New())))

	ordersBefore := countRows(t, orderRepo, &trade.Order{})
	invoicesBefore := countRows(t, orderRepo, &trade.Invoice{})

	second := newOrder(t, companyID, "ORD-1", trade.OrderTypeShipment)
	err := orderRepo.CreateWithInvoice(ctx, second, trade.NewInvoiceForOrder(second, uuid.New()))
	require.Error(t, err)
	assert.True(t, shared.IsConflict(err))

	// Nothing persisted: neither an order nor an orphaned invoice
	assert.Equal(t, ordersBefore, countRows(t, orderRepo, &trade.Order{}))
	assert.Equal(t, invoicesBefore, countRows(t, orderRepo, &trade.Invoice{}))
}

func TestCreateWithInvoice_SameNumberDifferentCompany(t *testing.T) {
	db := newTestDB(t)
	orderRepo := NewGormOrderRepository(db)
	ctx := context.Background()

	first := newOrder(t, uuid.New(), "ORD-1", trade.OrderTypeDelivery)
	require.NoError(t, orderRepo.CreateWithInvoice(ctx, first, trade.NewInvoiceForOrder(first, uuid.New())))

	// Order numbers are scoped to the company
	second := newOrder(t, uuid.New(), "ORD-1", trade.OrderTypeDelivery)
	require.NoError(t, orderRepo.CreateWithInvoice(ctx, second, trade.NewInvoiceForOrder(second, uuid.New())))
}

func TestCreateWithInvoice_InvoiceCollisionRollsBackOrder(t *testing.T) {
	db := newTestDB(t)
	orderRepo := NewGormOrderRepository(db)
	invoiceRepo := NewGormInvoiceRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	actorID := uuid.New()

	// A previously issued order already owns the derived invoice number
	squatter := newOrder(t, companyID, "ORD-9", trade.OrderTypeDelivery)
	require.NoError(t, orderRepo.CreateWithInvoice(ctx, squatter, trade.NewInvoiceForOrder(squatter, actorID)))

	// Free the order number but keep the invoice: order deletion does not
	// cascade to invoices
	require.NoError(t, orderRepo.DeleteByID(ctx, squatter.ID, companyID))

	colliding := newOrder(t, companyID, "ORD-9", trade.OrderTypeDelivery)
	err := orderRepo.CreateWithInvoice(ctx, colliding, trade.NewInvoiceForOrder(colliding, actorID))
	require.Error(t, err)
	assert.True(t, shared.IsConflict(err))

	// The colliding order was rolled back with the failed invoice insert
	_, err = orderRepo.FindByID(ctx, colliding.ID, companyID)
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))

	// And the original invoice survives untouched
	invoices, err := invoiceRepo.FindAll(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-ORD-9", invoices[0].InvoiceNumber)
}

func TestExistsByNumber(t *testing.T) {
	db := newTestDB(t)
	orderRepo := NewGormOrderRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	order := newOrder(t, companyID, "ORD-1", trade.OrderTypeDelivery)
	require.NoError(t, orderRepo.CreateWithInvoice(ctx, order, trade.NewInvoiceForOrder(order, uuid.New())))

	exists, err := orderRepo.ExistsByNumber(ctx, companyID, "ORD-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = orderRepo.ExistsByNumber(ctx, companyID, "ORD-2")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = orderRepo.ExistsByNumber(ctx, uuid.New(), "ORD-1")
	require.NoError(t, err)
	assert.False(t, exists, "order numbers are company-scoped")
}
