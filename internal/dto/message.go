package dto

import (
	"time"

	"github.com/petlink/petlink-api/internal/models"
)

// MessageDTO represents a chat message in API responses.
type MessageDTO struct {
	ID        uint64         `json:"id"`
	SenderID  uint64         `json:"sender_id"`
	OrderID   uint64         `json:"order_id"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	Sender    *PublicUserDTO `json:"sender,omitempty"`
}

// ToMessageDTO converts a Message model to MessageDTO.
func ToMessageDTO(message models.Message) MessageDTO {
	dto := MessageDTO{
		ID:        message.ID,
		SenderID:  message.SenderID,
		OrderID:   message.OrderID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}

	// Include sender if preloaded
	if message.Sender.ID != 0 {
		sender := ToPublicUserDTO(message.Sender)
		dto.Sender = &sender
	}

	return dto
}

// ToMessageDTOs converts a slice of messages.
func ToMessageDTOs(messages []models.Message) []MessageDTO {
	items := make([]MessageDTO, len(messages))
	for i, message := range messages {
		items[i] = ToMessageDTO(message)
	}
	return items
}
