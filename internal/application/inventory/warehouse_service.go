package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/shared"
)

// WarehouseService handles warehouse operations and stock analytics
type WarehouseService struct {
	warehouseRepo inventory.WarehouseRepository
	ledgerRepo    inventory.LedgerRepository
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(warehouseRepo inventory.WarehouseRepository, ledgerRepo inventory.LedgerRepository) *WarehouseService {
	return &WarehouseService{
		warehouseRepo: warehouseRepo,
		ledgerRepo:    ledgerRepo,
	}
}

// Create creates a new warehouse in the actor's company. Warehouse
// names are unique within a company.
func (s *WarehouseService) Create(ctx context.Context, actor identity.Actor, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	if err := identity.Authorize(actor, identity.OperationWrite); err != nil {
		return nil, err
	}

	exists, err := s.warehouseRepo.ExistsByName(ctx, actor.CompanyID, strings.TrimSpace(req.Name))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ConflictError("Warehouse name already exists in your company")
	}

	warehouse, err := inventory.NewWarehouse(actor.CompanyID, req.Name, inventory.SupportType(req.SupportType), actor.ID)
	if err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// List returns all warehouses of the actor's company
func (s *WarehouseService) List(ctx context.Context, actor identity.Actor) ([]WarehouseResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	warehouses, err := s.warehouseRepo.FindAll(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]WarehouseResponse, len(warehouses))
	for i := range warehouses {
		responses[i] = ToWarehouseResponse(&warehouses[i])
	}
	return responses, nil
}

// GetByID returns a single warehouse of the actor's company
func (s *WarehouseService) GetByID(ctx context.Context, actor identity.Actor, id uuid.UUID) (*WarehouseResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	warehouse, err := s.warehouseRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// Update applies a partial update to a warehouse. The name uniqueness
// check only runs when the name actually changes, and the support type
// is frozen once any order item references the warehouse: changing it
// would reinterpret recorded stock history.
func (s *WarehouseService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	if err := identity.Authorize(actor, identity.OperationWrite); err != nil {
		return nil, err
	}

	current, err := s.warehouseRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Warehouse name cannot be empty")
		}
		if name != current.Name {
			exists, err := s.warehouseRepo.ExistsByName(ctx, actor.CompanyID, name)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.ConflictError("Warehouse name already exists in your company")
			}
			fields["name"] = name
		}
	}

	if req.SupportType != nil && inventory.SupportType(*req.SupportType) != current.SupportType {
		if !inventory.SupportType(*req.SupportType).IsValid() {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid warehouse support type")
		}
		hasItems, err := s.ledgerRepo.HasOrderItems(ctx, id, actor.CompanyID)
		if err != nil {
			return nil, err
		}
		if hasItems {
			return nil, shared.ConflictError("cannot change support type with existing stock")
		}
		fields["support_type"] = *req.SupportType
	}

	if len(fields) > 0 {
		fields["modified_by"] = actor.ID
		if err := s.warehouseRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := s.warehouseRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(updated)
	return &response, nil
}

// Delete soft-deletes a warehouse
func (s *WarehouseService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if err := identity.Authorize(actor, identity.OperationDelete); err != nil {
		return err
	}
	return s.warehouseRepo.DeleteByID(ctx, id, actor.CompanyID)
}

// HighestStockProduct returns the best stocked (warehouse, product)
// pair of the actor's company. Returns a NotFound domain error when no
// pair has positive stock.
func (s *WarehouseService) HighestStockProduct(ctx context.Context, actor identity.Actor) (*inventory.HighestStockResult, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}
	return s.ledgerRepo.HighestStockProduct(ctx, actor.CompanyID)
}
