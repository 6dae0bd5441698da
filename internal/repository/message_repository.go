package repository

import (
	"gorm.io/gorm"

	"github.com/petlink/petlink-api/internal/database"
	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/utils"
)

// GormMessageRepository is a GORM implementation of MessageRepository
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

// Create creates a new message
func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindByID finds a message by ID with the sender preloaded
func (r *GormMessageRepository) FindByID(id uint64) (*models.Message, error) {
	var message models.Message
	if err := r.db.Preload("Sender").First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListByOrder retrieves messages for a care order, oldest first
func (r *GormMessageRepository) ListByOrder(orderID uint64, params utils.PaginationParams) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Scopes(database.Paginate(params)).
		Preload("Sender").
		Find(&messages).Error
	return messages, err
}

// DeleteByOrder removes all messages under a care order. Used to satisfy
// referential constraints before the order itself is deleted.
func (r *GormMessageRepository) DeleteByOrder(orderID uint64) error {
	return r.db.Where("order_id = ?", orderID).Delete(&models.Message{}).Error
}

// DeleteBySender removes a message only if it belongs to the sender. The
// predicate-filtered delete keeps "not found" and "not owned" indistinguishable.
func (r *GormMessageRepository) DeleteBySender(id, senderID uint64) (int64, error) {
	result := r.db.Where("id = ? AND sender_id = ?", id, senderID).Delete(&models.Message{})
	return result.RowsAffected, result.Error
}
