package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/partner"
)

// CreateBusinessPartnerRequest creates a customer or supplier
type CreateBusinessPartnerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
	Type  string `json:"type" binding:"required,oneof=customer supplier"`
}

// UpdateBusinessPartnerRequest applies a partial update; nil fields are untouched
type UpdateBusinessPartnerRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email *string `json:"email" binding:"omitempty,email,max=200"`
	Type  *string `json:"type" binding:"omitempty,oneof=customer supplier"`
}

// BusinessPartnerResponse represents a business partner in API responses
type BusinessPartnerResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"companyId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToBusinessPartnerResponse maps a partner entity to its response form
func ToBusinessPartnerResponse(p *partner.BusinessPartner) BusinessPartnerResponse {
	return BusinessPartnerResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		Email:     p.Email,
		Type:      string(p.Type),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
