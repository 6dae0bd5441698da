package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/repository"
	"github.com/petlink/petlink-api/internal/utils"
)

var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrNotProposalAuthor     = errors.New("only the proposing petsitter can perform this action")
	ErrInvalidPrice          = errors.New("price must be greater than zero")
	ErrInvalidProposalStatus = errors.New("invalid proposal status")
)

// ProposalService handles petsitter proposal business logic.
type ProposalService struct {
	proposalRepo repository.ProposalRepository
}

// NewProposalService creates a new ProposalService.
func NewProposalService(proposalRepo repository.ProposalRepository) *ProposalService {
	return &ProposalService{
		proposalRepo: proposalRepo,
	}
}

// CreateProposalInput represents input for creating a proposal. The petsitter
// ID is taken at face value; the HTTP layer rejects payloads naming a
// petsitter other than the authenticated requester before calling.
type CreateProposalInput struct {
	OrderID     uint64
	PetsitterID uint64
	Price       float64
	Comment     string
	Status      models.ProposalStatus
}

// Create persists a new proposal. Status defaults to pending.
func (s *ProposalService) Create(input CreateProposalInput) (*models.Proposal, error) {
	if input.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if input.Status == "" {
		input.Status = models.ProposalStatusPending
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidProposalStatus
	}

	proposal := &models.Proposal{
		OrderID:     input.OrderID,
		PetsitterID: input.PetsitterID,
		Price:       input.Price,
		Comment:     input.Comment,
		Status:      input.Status,
	}

	if err := s.proposalRepo.Create(proposal); err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	return proposal, nil
}

// Get retrieves a proposal by ID.
func (s *ProposalService) Get(id uint64) (*models.Proposal, error) {
	proposal, err := s.proposalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to find proposal: %w", err)
	}
	return proposal, nil
}

// List retrieves proposals, optionally restricted to one care order.
func (s *ProposalService) List(orderID *uint64, params utils.PaginationParams) ([]models.Proposal, error) {
	if orderID != nil {
		return s.proposalRepo.ListByOrder(*orderID, params)
	}
	return s.proposalRepo.List(params)
}

// UpdateProposalInput represents a partial proposal update. Nil fields are
// left unchanged.
type UpdateProposalInput struct {
	Price   *float64
	Comment *string
	Status  *models.ProposalStatus
}

// Update applies the provided fields to a proposal authored by the requester.
func (s *ProposalService) Update(id uint64, requester *models.User, input UpdateProposalInput) (*models.Proposal, error) {
	proposal, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !proposal.CanMutate(requester) {
		return nil, ErrNotProposalAuthor
	}

	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, ErrInvalidPrice
		}
		proposal.Price = *input.Price
	}
	if input.Comment != nil {
		proposal.Comment = *input.Comment
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidProposalStatus
		}
		proposal.Status = *input.Status
	}

	if err := s.proposalRepo.Update(proposal); err != nil {
		return nil, fmt.Errorf("failed to update proposal: %w", err)
	}

	return proposal, nil
}

// Delete removes a proposal authored by the requester.
func (s *ProposalService) Delete(id uint64, requester *models.User) error {
	proposal, err := s.Get(id)
	if err != nil {
		return err
	}

	if !proposal.CanMutate(requester) {
		return ErrNotProposalAuthor
	}

	if err := s.proposalRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete proposal: %w", err)
	}

	return nil
}
