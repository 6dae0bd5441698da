package dto

import "github.com/petlink/petlink-api/internal/models"

// PublicUserDTO is the minimal public projection of a user (embedded in
// care order and message responses).
type PublicUserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// UserDTO represents a user in API responses. The password hash is never
// exposed.
type UserDTO struct {
	ID              uint64          `json:"id"`
	Username        string          `json:"username"`
	Email           string          `json:"email"`
	Role            models.UserRole `json:"role"`
	OwnerRating     float64         `json:"owner_rating"`
	PetsitterRating float64         `json:"petsitter_rating"`
	AvatarURL       string          `json:"avatar_url,omitempty"`
	Bio             string          `json:"bio,omitempty"`
	Pets            string          `json:"pets,omitempty"`
	Experience      string          `json:"experience,omitempty"`
	City            string          `json:"city,omitempty"`
}

// ToPublicUserDTO converts a User model to its public projection.
func ToPublicUserDTO(user models.User) PublicUserDTO {
	return PublicUserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToUserDTO converts a User model to UserDTO.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		Role:            user.Role,
		OwnerRating:     user.OwnerRating,
		PetsitterRating: user.PetsitterRating,
		AvatarURL:       user.AvatarURL,
		Bio:             user.Bio,
		Pets:            user.Pets,
		Experience:      user.Experience,
		City:            user.City,
	}
}
