package identity

import (
	"context"

	"github.com/ims/backend/internal/domain/identity"
)

// CompanyService handles operations on the caller's own company.
// Companies are the tenancy root: an actor can never reach any company
// but their own, so every method works on actor.CompanyID.
type CompanyService struct {
	companyRepo identity.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo identity.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// Get returns the actor's company
func (s *CompanyService) Get(ctx context.Context, actor identity.Actor) (*CompanyResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindByID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// Update renames the actor's company
func (s *CompanyService) Update(ctx context.Context, actor identity.Actor, req UpdateCompanyRequest) (*CompanyResponse, error) {
	if err := identity.Authorize(actor, identity.OperationWrite); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindByID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	if err := company.Rename(req.Name, actor.ID); err != nil {
		return nil, err
	}
	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// Delete soft-deletes the actor's company
func (s *CompanyService) Delete(ctx context.Context, actor identity.Actor) error {
	if err := identity.Authorize(actor, identity.OperationDelete); err != nil {
		return err
	}
	return s.companyRepo.DeleteByID(ctx, actor.CompanyID)
}
