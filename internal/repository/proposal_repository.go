package repository

import (
	"gorm.io/gorm"

	"github.com/petlink/petlink-api/internal/database"
	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/utils"
)

// GormProposalRepository is a GORM implementation of ProposalRepository
type GormProposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new ProposalRepository
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &GormProposalRepository{db: db}
}

// Create creates a new proposal
func (r *GormProposalRepository) Create(proposal *models.Proposal) error {
	return r.db.Create(proposal).Error
}

// FindByID finds a proposal by ID
func (r *GormProposalRepository) FindByID(id uint64) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := r.db.First(&proposal, id).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

// List retrieves proposals with pagination
func (r *GormProposalRepository) List(params utils.PaginationParams) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.
		Scopes(database.Paginate(params)).
		Find(&proposals).Error
	return proposals, err
}

// ListByOrder retrieves proposals for a care order with pagination
func (r *GormProposalRepository) ListByOrder(orderID uint64, params utils.PaginationParams) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.
		Where("order_id = ?", orderID).
		Scopes(database.Paginate(params)).
		Find(&proposals).Error
	return proposals, err
}

// Update persists changes to a proposal
func (r *GormProposalRepository) Update(proposal *models.Proposal) error {
	return r.db.Save(proposal).Error
}

// Delete removes a proposal
func (r *GormProposalRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Proposal{}, id).Error
}
