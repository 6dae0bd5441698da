package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleOwner     UserRole = "owner"
	RolePetsitter UserRole = "petsitter"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleOwner, RolePetsitter:
		return true
	}
	return false
}

type User struct {
	ID           uint64   `gorm:"primarykey" json:"id"`
	Username     string   `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// OwnerRating is given by petsitters, PetsitterRating by owners.
	OwnerRating     float64 `gorm:"not null;default:0" json:"owner_rating"`
	PetsitterRating float64 `gorm:"not null;default:0" json:"petsitter_rating"`

	AvatarURL  string `gorm:"type:text" json:"avatar_url,omitempty"`
	Bio        string `gorm:"type:text" json:"bio,omitempty"`
	Pets       string `gorm:"type:text" json:"pets,omitempty"`
	Experience string `gorm:"type:text" json:"experience,omitempty"`
	City       string `gorm:"type:text" json:"city,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CareOrders []CareOrder `gorm:"foreignKey:OwnerID" json:"-"`
	Proposals  []Proposal  `gorm:"foreignKey:PetsitterID" json:"-"`
	Messages   []Message   `gorm:"foreignKey:SenderID" json:"-"`
}
