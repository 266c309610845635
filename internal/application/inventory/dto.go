package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/ims/backend/internal/domain/inventory"
)

// CreateWarehouseRequest creates a new warehouse
type CreateWarehouseRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	SupportType string `json:"supportType" binding:"required,oneof=solid liquid mixed"`
}

// UpdateWarehouseRequest applies a partial update; nil fields are untouched
type UpdateWarehouseRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	SupportType *string `json:"supportType" binding:"omitempty,oneof=solid liquid mixed"`
}

// WarehouseResponse represents a warehouse in API responses
type WarehouseResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"companyId"`
	Name        string    `json:"name"`
	SupportType string    `json:"supportType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToWarehouseResponse maps a warehouse entity to its response form
func ToWarehouseResponse(w *inventory.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:          w.ID,
		CompanyID:   w.CompanyID,
		Name:        w.Name,
		SupportType: string(w.SupportType),
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
