package models

import "time"

type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
	ProposalStatusCanceled ProposalStatus = "canceled"
)

// Valid reports whether the status is one of the known values.
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusPending, ProposalStatusAccepted, ProposalStatusRejected, ProposalStatusCanceled:
		return true
	}
	return false
}

type Proposal struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	OrderID     uint64         `gorm:"not null;index" json:"order_id"`
	PetsitterID uint64         `gorm:"not null;index" json:"petsitter_id"`
	Price       float64        `gorm:"not null" json:"price"`
	Comment     string         `gorm:"type:varchar(500)" json:"comment,omitempty"`
	Status      ProposalStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`

	// Relations
	Order     CareOrder `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Petsitter User      `gorm:"foreignKey:PetsitterID" json:"petsitter,omitempty"`
}

// CanMutate reports whether the requester may update or delete this proposal.
func (p *Proposal) CanMutate(requester *User) bool {
	return requester != nil && p.PetsitterID == requester.ID
}
