package models

import "time"

type Message struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	SenderID  uint64    `gorm:"not null;index" json:"sender_id"`
	OrderID   uint64    `gorm:"not null;index" json:"order_id"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Sender User      `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Order  CareOrder `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// CanMutate reports whether the requester may delete this message.
func (m *Message) CanMutate(requester *User) bool {
	return requester != nil && m.SenderID == requester.ID
}
