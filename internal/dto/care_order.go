package dto

import (
	"time"

	"github.com/petlink/petlink-api/internal/models"
)

// CareOrderDTO represents a care order in API responses.
type CareOrderDTO struct {
	ID          uint64             `json:"id"`
	OwnerID     uint64             `json:"owner_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	StartDate   time.Time          `json:"start_date"`
	EndDate     time.Time          `json:"end_date"`
	Status      models.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	Owner       *PublicUserDTO     `json:"owner,omitempty"`
}

// CareOrderListResponse represents a paginated list of care orders.
type CareOrderListResponse struct {
	Orders []CareOrderDTO `json:"orders"`
	Skip   int            `json:"skip"`
	Limit  int            `json:"limit"`
	Total  int64          `json:"total"`
}

// ToCareOrderDTO converts a CareOrder model to CareOrderDTO.
func ToCareOrderDTO(order models.CareOrder) CareOrderDTO {
	dto := CareOrderDTO{
		ID:          order.ID,
		OwnerID:     order.OwnerID,
		Title:       order.Title,
		Description: order.Description,
		StartDate:   order.StartDate,
		EndDate:     order.EndDate,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}

	// Include owner if preloaded
	if order.Owner.ID != 0 {
		owner := ToPublicUserDTO(order.Owner)
		dto.Owner = &owner
	}

	return dto
}

// ToCareOrderListResponse converts a slice of care orders to a list response.
func ToCareOrderListResponse(orders []models.CareOrder, skip, limit int, total int64) CareOrderListResponse {
	items := make([]CareOrderDTO, len(orders))
	for i, order := range orders {
		items[i] = ToCareOrderDTO(order)
	}

	return CareOrderListResponse{
		Orders: items,
		Skip:   skip,
		Limit:  limit,
		Total:  total,
	}
}
