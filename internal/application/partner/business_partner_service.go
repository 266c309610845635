package partner

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/inventory"
	"github.com/ims/backend/internal/domain/partner"
	"github.com/ims/backend/internal/domain/shared"
)

// BusinessPartnerService handles customer and supplier operations
type BusinessPartnerService struct {
	partnerRepo partner.BusinessPartnerRepository
	ledgerRepo  inventory.LedgerRepository
}

// NewBusinessPartnerService creates a new BusinessPartnerService
func NewBusinessPartnerService(partnerRepo partner.BusinessPartnerRepository, ledgerRepo inventory.LedgerRepository) *BusinessPartnerService {
	return &BusinessPartnerService{
		partnerRepo: partnerRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// Create creates a new business partner in the actor's company
func (s *BusinessPartnerService) Create(ctx context.Context, actor identity.Actor, req CreateBusinessPartnerRequest) (*BusinessPartnerResponse, error) {
	if err := identity.Authorize(actor, identity.OperationWrite); err != nil {
		return nil, err
	}

	p, err := partner.NewBusinessPartner(actor.CompanyID, req.Name, req.Email, partner.PartnerType(req.Type), actor.ID)
	if err != nil {
		return nil, err
	}
	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToBusinessPartnerResponse(p)
	return &response, nil
}

// List returns all business partners of the actor's company
func (s *BusinessPartnerService) List(ctx context.Context, actor identity.Actor) ([]BusinessPartnerResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	partners, err := s.partnerRepo.FindAll(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]BusinessPartnerResponse, len(partners))
	for i := range partners {
		responses[i] = ToBusinessPartnerResponse(&partners[i])
	}
	return responses, nil
}

// GetByID returns a single business partner of the actor's company
func (s *BusinessPartnerService) GetByID(ctx context.Context, actor identity.Actor, id uuid.UUID) (*BusinessPartnerResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	p, err := s.partnerRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToBusinessPartnerResponse(p)
	return &response, nil
}

// Update applies a partial update to a business partner
func (s *BusinessPartnerService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateBusinessPartnerRequest) (*BusinessPartnerResponse, error) {
	if err := identity.Authorize(actor, identity.OperationWrite); err != nil {
		return nil, err
	}

	if _, err := s.partnerRepo.FindByID(ctx, id, actor.CompanyID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Business partner name cannot be empty")
		}
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		fields["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Type != nil {
		if !partner.PartnerType(*req.Type).IsValid() {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid business partner type")
		}
		fields["type"] = *req.Type
	}

	if len(fields) > 0 {
		fields["modified_by"] = actor.ID
		if err := s.partnerRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := s.partnerRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToBusinessPartnerResponse(updated)
	return &response, nil
}

// Delete soft-deletes a business partner
func (s *BusinessPartnerService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if err := identity.Authorize(actor, identity.OperationDelete); err != nil {
		return err
	}
	return s.partnerRepo.DeleteByID(ctx, id, actor.CompanyID)
}

// CustomerWithMostOrders returns the customer with the most orders in
// the actor's company, or nil when the company has no customer orders.
func (s *BusinessPartnerService) CustomerWithMostOrders(ctx context.Context, actor identity.Actor) (*inventory.CustomerWithMostOrdersResult, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}
	return s.ledgerRepo.CustomerWithMostOrders(ctx, actor.CompanyID)
}
