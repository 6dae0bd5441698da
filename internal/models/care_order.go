package models

import "time"

type OrderStatus string

const (
	OrderStatusOpen       OrderStatus = "open"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// Valid reports whether the status is one of the known values. There is no
// enforced transition graph: any known value may be set via update.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusOpen, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

type CareOrder struct {
	ID          uint64      `gorm:"primarykey" json:"id"`
	OwnerID     uint64      `gorm:"not null;index" json:"owner_id"`
	Title       string      `gorm:"type:varchar(100);not null" json:"title"`
	Description string      `gorm:"type:varchar(500)" json:"description"`
	StartDate   time.Time   `gorm:"not null;index" json:"start_date"`
	EndDate     time.Time   `gorm:"not null;index" json:"end_date"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

// CanMutate reports whether the requester may update or delete this order.
func (o *CareOrder) CanMutate(requester *User) bool {
	return requester != nil && o.OwnerID == requester.ID
}
