package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petlink/petlink-api/internal/constants"
	"github.com/petlink/petlink-api/internal/dto"
	apierrors "github.com/petlink/petlink-api/internal/errors"
	"github.com/petlink/petlink-api/internal/middleware"
	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/services"
)

// UserHandler coordinates user-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates a new user account.
func (h *UserHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username string          `json:"username" binding:"required,min=3,max=50"`
		Email    string          `json:"email" binding:"required,email,max=100"`
		Password string          `json:"password" binding:"required"`
		Role     models.UserRole `json:"role" binding:"required,oneof=owner petsitter"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Register(services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// GetUser returns a user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateUser applies a partial profile update.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateUserRequest struct {
		Username   *string          `json:"username" binding:"omitempty,min=3,max=50"`
		Email      *string          `json:"email" binding:"omitempty,email,max=100"`
		Role       *models.UserRole `json:"role" binding:"omitempty,oneof=owner petsitter"`
		Password   *string          `json:"password"`
		AvatarURL  *string          `json:"avatar_url"`
		Bio        *string          `json:"bio"`
		Pets       *string          `json:"pets"`
		Experience *string          `json:"experience"`
		City       *string          `json:"city"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Update(id, services.UpdateUserInput{
		Username:   req.Username,
		Email:      req.Email,
		Role:       req.Role,
		Password:   req.Password,
		AvatarURL:  req.AvatarURL,
		Bio:        req.Bio,
		Pets:       req.Pets,
		Experience: req.Experience,
		City:       req.City,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// DeleteUser soft-deletes an account after password confirmation.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type DeleteUserRequest struct {
		Password string `json:"password" binding:"required"`
	}

	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.userService.SoftDelete(id, req.Password); err != nil {
		respondUserError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RateUser records a rating for a user. The rater's role is the authenticated
// requester's role.
func (h *UserHandler) RateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type RateRequest struct {
		Value *float64 `json:"value" binding:"required,gte=0,lte=5"`
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Rating value must be between 0 and 5")
		return
	}

	user, err := h.userService.Rate(id, requester.Role, *req.Value)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrInvalidRole):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrDuplicateUser):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrIncorrectPassword):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidRating):
		apierrors.InvalidOperation(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
