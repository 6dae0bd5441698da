package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/petlink/petlink-api/internal/constants"
	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/repository"
	"github.com/petlink/petlink-api/internal/security"
)

var (
	ErrUsernameTaken     = errors.New("username already exists")
	ErrDuplicateUser     = errors.New("username or email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrPasswordTooShort  = errors.New("password too short")
	ErrInvalidRole       = errors.New("role must be owner or petsitter")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInvalidRating     = errors.New("invalid rating operation")
)

// UserService handles user registration, profile management, soft deletion,
// and ratings.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new user.
// The role is fixed at creation.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     models.UserRole
}

// Register creates a new user with a hashed password.
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	// Only active users block a username; a soft-deleted row does not.
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser retrieves an active user by ID.
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateUserInput represents a partial profile update. Nil fields are left
// unchanged.
type UpdateUserInput struct {
	Username   *string
	Email      *string
	Role       *models.UserRole
	Password   *string
	AvatarURL  *string
	Bio        *string
	Pets       *string
	Experience *string
	City       *string
}

// Update applies the provided fields to a user. Password updates are re-hashed.
func (s *UserService) Update(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, ErrInvalidRole
		}
		user.Role = *input.Role
	}
	if input.Password != nil {
		if len(*input.Password) < constants.MinPasswordLength {
			return nil, ErrPasswordTooShort
		}
		hash, err := security.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Pets != nil {
		user.Pets = *input.Pets
	}
	if input.Experience != nil {
		user.Experience = *input.Experience
	}
	if input.City != nil {
		user.City = *input.City
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// SoftDelete flags a user as deleted after re-verifying the password. The row
// is never erased.
func (s *UserService) SoftDelete(id uint64, password string) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return ErrIncorrectPassword
	}

	if err := s.userRepo.SoftDelete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// Rate records a rating for a user. Petsitters rate owners (owner_rating) and
// owners rate petsitters (petsitter_rating); any other combination is invalid.
func (s *UserService) Rate(id uint64, raterRole models.UserRole, value float64) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	switch {
	case user.Role == models.RoleOwner && raterRole == models.RolePetsitter:
		user.OwnerRating = value
	case user.Role == models.RolePetsitter && raterRole == models.RoleOwner:
		user.PetsitterRating = value
	default:
		return nil, ErrInvalidRating
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}

	return user, nil
}
