package repository

import (
	"time"

	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/utils"
)

// UserRepository defines the interface for user data access. Soft-deleted
// users are excluded from every lookup.
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds an active user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds an active user by username
	FindByUsername(username string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// SoftDelete flags a user as deleted without erasing the row
	SoftDelete(id uint64) error
}

// CareOrderFilter holds the visibility scope and optional filters for listing
// care orders. Date bounds are inclusive and compose with AND semantics.
type CareOrderFilter struct {
	OwnerID       *uint64
	Status        *models.OrderStatus
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	EndDateFrom   *time.Time
	EndDateTo     *time.Time
	SortDesc      bool
	Pagination    utils.PaginationParams
}

// CareOrderRepository defines the interface for care order data access
type CareOrderRepository interface {
	// Create creates a new care order
	Create(order *models.CareOrder) error

	// FindByID finds a care order by ID with the owner preloaded
	FindByID(id uint64) (*models.CareOrder, error)

	// List retrieves care orders matching the filter, sorted by start date,
	// with the total count before pagination
	List(filter CareOrderFilter) ([]models.CareOrder, int64, error)

	// Update persists changes to a care order
	Update(order *models.CareOrder) error

	// Delete removes a care order
	Delete(id uint64) error
}

// ProposalRepository defines the interface for proposal data access
type ProposalRepository interface {
	// Create creates a new proposal
	Create(proposal *models.Proposal) error

	// FindByID finds a proposal by ID
	FindByID(id uint64) (*models.Proposal, error)

	// List retrieves proposals with pagination
	List(params utils.PaginationParams) ([]models.Proposal, error)

	// ListByOrder retrieves proposals for a care order with pagination
	ListByOrder(orderID uint64, params utils.PaginationParams) ([]models.Proposal, error)

	// Update persists changes to a proposal
	Update(proposal *models.Proposal) error

	// Delete removes a proposal
	Delete(id uint64) error
}

// MessageRepository defines the interface for chat message data access
type MessageRepository interface {
	// Create creates a new message
	Create(message *models.Message) error

	// FindByID finds a message by ID with the sender preloaded
	FindByID(id uint64) (*models.Message, error)

	// ListByOrder retrieves messages for a care order, oldest first
	ListByOrder(orderID uint64, params utils.PaginationParams) ([]models.Message, error)

	// DeleteByOrder removes all messages under a care order
	DeleteByOrder(orderID uint64) error

	// DeleteBySender removes a message only if it belongs to the sender and
	// returns the number of rows removed
	DeleteBySender(id, senderID uint64) (int64, error)
}
