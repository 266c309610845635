package trade

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
)

// OrderService handles order issuance and management. Creating an order
// always issues its invoice in the same transaction; deleting an order
// leaves the invoice behind as the audit record.
type OrderService struct {
	orderRepo     trade.OrderRepository
	warehouseRepo inventory.WarehouseRepository
	partnerRepo   partner.BusinessPartnerRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, warehouseRepo inventory.WarehouseRepository, partnerRepo partner.BusinessPartnerRepository) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		warehouseRepo: warehouseRepo,
		partnerRepo:   partnerRepo,
	}
}

// Create issues a new order and its derived invoice atomically.
// The referenced warehouse and business partner must exist in the
// actor's company.
func (s *OrderService) Create(ctx context.Context, actor identity.Actor, req CreateOrderRequest) (*OrderResponse, error) {
	if err := identity.Authorize(actor, identity.OperationWrite); err != nil {
		return nil, err
	}

	if _, err := s.warehouseRepo.FindByID(ctx, req.WarehouseID, actor.CompanyID); err != nil {
		return nil, err
	}
	if _, err := s.partnerRepo.FindByID(ctx, req.BusinessPartnerID, actor.CompanyID); err != nil {
		return nil, err
	}

	order, err := trade.NewOrder(actor.CompanyID, req.WarehouseID, req.BusinessPartnerID, req.OrderNumber, trade.OrderType(req.Type), actor.ID)
	if err != nil {
		return nil, err
	}
	invoice := trade.NewInvoiceForOrder(order, actor.ID)

	if err := s.orderRepo.CreateWithInvoice(ctx, order, invoice); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List returns all orders of the actor's company
func (s *OrderService) List(ctx context.Context, actor identity.Actor) ([]OrderResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindAll(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses, nil
}

// GetByID returns a single order of the actor's company
func (s *OrderService) GetByID(ctx context.Context, actor identity.Actor, id uuid.UUID) (*OrderResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Update applies a partial update to an order. The number uniqueness
// check only runs when the number actually changes. The invoice keeps
// its original number; it records the issuance, not the current state.
func (s *OrderService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	if err := identity.Authorize(actor, identity.OperationWrite); err != nil {
		return nil, err
	}

	current, err := s.orderRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}

	if req.OrderNumber != nil {
		number := strings.TrimSpace(*req.OrderNumber)
		if number == "" {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Order number cannot be empty")
		}
		if number != current.OrderNumber {
			exists, err := s.orderRepo.ExistsByNumber(ctx, actor.CompanyID, number)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.ConflictError("Order number already exists in your company")
			}
			fields["order_number"] = number
		}
	}

	if req.Type != nil {
		if !trade.OrderType(*req.Type).IsValid() {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid order type")
		}
		fields["type"] = *req.Type
	}

	if req.WarehouseID != nil && *req.WarehouseID != current.WarehouseID {
		if _, err := s.warehouseRepo.FindByID(ctx, *req.WarehouseID, actor.CompanyID); err != nil {
			return nil, err
		}
		fields["warehouse_id"] = *req.WarehouseID
	}

	if req.BusinessPartnerID != nil && *req.BusinessPartnerID != current.BusinessPartnerID {
		if _, err := s.partnerRepo.FindByID(ctx, *req.BusinessPartnerID, actor.CompanyID); err != nil {
			return nil, err
		}
		fields["business_partner_id"] = *req.BusinessPartnerID
	}

	if len(fields) > 0 {
		fields["modified_by"] = actor.ID
		if err := s.orderRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := s.orderRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(updated)
	return &response, nil
}

// Delete soft-deletes an order. The invoice is deliberately left alive.
func (s *OrderService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if err := identity.Authorize(actor, identity.OperationDelete); err != nil {
		return err
	}
	return s.orderRepo.DeleteByID(ctx, id, actor.CompanyID)
}
