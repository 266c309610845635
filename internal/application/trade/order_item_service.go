package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/catalog"
	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
)

// OrderItemService handles order item operations. Items inherit their
// tenant scope from the owning order; every mutation first resolves the
// order under the actor's company.
type OrderItemService struct {
	itemRepo    trade.OrderItemRepository
	orderRepo   trade.OrderRepository
	productRepo catalog.ProductRepository
}

// NewOrderItemService creates a new OrderItemService
func NewOrderItemService(itemRepo trade.OrderItemRepository, orderRepo trade.OrderRepository, productRepo catalog.ProductRepository) *OrderItemService {
	return &OrderItemService{
		itemRepo:    itemRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Create adds a product to an order. The order and the product must both
// belong to the actor's company, and a product may appear at most once
// per order.
func (s *OrderItemService) Create(ctx context.Context, actor identity.Actor, req CreateOrderItemRequest) (*OrderItemResponse, error) {
	if err := identity.Authorize(actor, identity.OperationWrite); err != nil {
		return nil, err
	}

	if _, err := s.orderRepo.FindByID(ctx, req.OrderID, actor.CompanyID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindByID(ctx, req.ProductID, actor.CompanyID); err != nil {
		return nil, err
	}

	exists, err := s.itemRepo.ExistsForProduct(ctx, req.OrderID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ConflictError("Product already added to this order")
	}

	item, err := trade.NewOrderItem(req.OrderID, req.ProductID, req.Quantity, actor.ID)
	if err != nil {
		return nil, err
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToOrderItemResponse(item)
	return &response, nil
}

// List returns all order items reachable from the actor's company
func (s *OrderItemService) List(ctx context.Context, actor identity.Actor) ([]OrderItemResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindAll(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderItemResponse, len(items))
	for i := range items {
		responses[i] = ToOrderItemResponse(&items[i])
	}
	return responses, nil
}

// GetByID returns a single order item of the actor's company
func (s *OrderItemService) GetByID(ctx context.Context, actor identity.Actor, id uuid.UUID) (*OrderItemResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToOrderItemResponse(item)
	return &response, nil
}

// Update changes an item's quantity
func (s *OrderItemService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateOrderItemRequest) (*OrderItemResponse, error) {
	if err := identity.Authorize(actor, identity.OperationWrite); err != nil {
		return nil, err
	}

	if _, err := s.itemRepo.FindByID(ctx, id, actor.CompanyID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Quantity must be greater than zero")
		}
		fields["quantity"] = *req.Quantity
	}

	if len(fields) > 0 {
		fields["modified_by"] = actor.ID
		if err := s.itemRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := s.itemRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToOrderItemResponse(updated)
	return &response, nil
}

// Delete soft-deletes an order item
func (s *OrderItemService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if err := identity.Authorize(actor, identity.OperationDelete); err != nil {
		return err
	}
	return s.itemRepo.DeleteByID(ctx, id, actor.CompanyID)
}
