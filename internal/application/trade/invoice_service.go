package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/identity"
	"github.com/ims/backend/internal/domain/trade"
)

// InvoiceService exposes invoices read-only. The only writer is the
// order issuance transaction.
type InvoiceService struct {
	invoiceRepo trade.InvoiceRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo trade.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

// List returns all invoices of the actor's company
func (s *InvoiceService) List(ctx context.Context, actor identity.Actor) ([]InvoiceResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses, nil
}

// GetByID returns a single invoice of the actor's company
func (s *InvoiceService) GetByID(ctx context.Context, actor identity.Actor, id uuid.UUID) (*InvoiceResponse, error) {
	if err := identity.Authorize(actor, identity.OperationRead); err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}
