package dto

import (
	"time"

	"github.com/petlink/petlink-api/internal/models"
)

// ProposalDTO represents a proposal in API responses.
type ProposalDTO struct {
	ID          uint64                `json:"id"`
	OrderID     uint64                `json:"order_id"`
	PetsitterID uint64                `json:"petsitter_id"`
	Price       float64               `json:"price"`
	Comment     string                `json:"comment,omitempty"`
	Status      models.ProposalStatus `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
}

// ToProposalDTO converts a Proposal model to ProposalDTO.
func ToProposalDTO(proposal models.Proposal) ProposalDTO {
	return ProposalDTO{
		ID:          proposal.ID,
		OrderID:     proposal.OrderID,
		PetsitterID: proposal.PetsitterID,
		Price:       proposal.Price,
		Comment:     proposal.Comment,
		Status:      proposal.Status,
		CreatedAt:   proposal.CreatedAt,
	}
}

// ToProposalDTOs converts a slice of proposals.
func ToProposalDTOs(proposals []models.Proposal) []ProposalDTO {
	items := make([]ProposalDTO, len(proposals))
	for i, proposal := range proposals {
		items[i] = ToProposalDTO(proposal)
	}
	return items
}
