package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/catalog"
	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/shared"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo catalog.ProductRepository
	ledgerRepo  inventory.LedgerRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, ledgerRepo inventory.LedgerRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// Create creates a new product in the actor's company
func (s *ProductService) Create(ctx context.Context, actor identity.Actor, req CreateProductRequest) (*ProductResponse, error) {
	if err := identity.Authorize(actor, identity.OperationWrite); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(actor.CompanyID, req.Name, req.Price, catalog.ProductKind(req.Type), actor.ID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List returns all products of the actor's company
func (s *ProductService) List(ctx context.Context, actor identity.Actor) ([]ProductResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindAll(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses, nil
}

// GetByID returns a single product of the actor's company
func (s *ProductService) GetByID(ctx context.Context, actor identity.Actor, id uuid.UUID) (*ProductResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	if err := identity.Authorize(actor, identity.OperationWrite); err != nil {
		return nil, err
	}

	if _, err := s.productRepo.FindByID(ctx, id, actor.CompanyID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Product name cannot be empty")
		}
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Product price cannot be negative")
		}
		fields["price"] = *req.Price
	}
	if req.Type != nil {
		if !catalog.ProductKind(*req.Type).IsValid() {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid product type")
		}
		fields["type"] = *req.Type
	}

	if len(fields) > 0 {
		fields["modified_by"] = actor.ID
		if err := s.productRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := s.productRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(updated)
	return &response, nil
}

// Delete soft-deletes a product
func (s *ProductService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if err := identity.Authorize(actor, identity.OperationDelete); err != nil {
		return err
	}
	return s.productRepo.DeleteByID(ctx, id, actor.CompanyID)
}

// BestSellingProduct returns the product with the highest total ordered
// quantity in the actor's company, or nil when no order items exist.
func (s *ProductService) BestSellingProduct(ctx context.Context, actor identity.Actor) (*inventory.BestSellingProductResult, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}
	return s.ledgerRepo.BestSellingProduct(ctx, actor.CompanyID)
}
