package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/repository"
	"github.com/petlink/petlink-api/internal/utils"
)

var (
	ErrOrderNotFound      = errors.New("care order not found")
	ErrNotOrderOwner      = errors.New("only the order owner can perform this action")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidListerRole  = errors.New("role may not list care orders")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
)

// CareOrderService handles care order business logic, including the
// role-scoped listing visibility rules.
type CareOrderService struct {
	orderRepo repository.CareOrderRepository
}

// NewCareOrderService creates a new CareOrderService.
func NewCareOrderService(orderRepo repository.CareOrderRepository) *CareOrderService {
	return &CareOrderService{
		orderRepo: orderRepo,
	}
}

// CreateCareOrderInput represents input for creating a care order.
type CreateCareOrderInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      models.OrderStatus
}

// Create persists a new care order for the owner. Status defaults to open.
func (s *CareOrderService) Create(ownerID uint64, input CreateCareOrderInput) (*models.CareOrder, error) {
	if input.Status == "" {
		input.Status = models.OrderStatusOpen
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidOrderStatus
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, ErrInvalidDateRange
	}

	order := &models.CareOrder{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      input.Status,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create care order: %w", err)
	}

	return s.orderRepo.FindByID(order.ID)
}

// Get returns a care order with its owner projection.
func (s *CareOrderService) Get(id uint64) (*models.CareOrder, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find care order: %w", err)
	}
	return order, nil
}

// ListCareOrdersInput represents filters for listing care orders. Date bounds
// are inclusive and apply to start and end dates independently.
type ListCareOrdersInput struct {
	Status        *models.OrderStatus
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	EndDateFrom   *time.Time
	EndDateTo     *time.Time
	SortDesc      bool
	Pagination    utils.PaginationParams
}

// List returns care orders visible to the requester. The visibility rule is
// evaluated first and cannot be overridden by filters: owners see only their
// own orders, petsitters see only open orders. The status filter is honored
// for owners only; a petsitter's status filter is ignored so that petsitters
// always see all open orders.
func (s *CareOrderService) List(requester *models.User, input ListCareOrdersInput) ([]models.CareOrder, int64, error) {
	filter := repository.CareOrderFilter{
		StartDateFrom: input.StartDateFrom,
		StartDateTo:   input.StartDateTo,
		EndDateFrom:   input.EndDateFrom,
		EndDateTo:     input.EndDateTo,
		SortDesc:      input.SortDesc,
		Pagination:    input.Pagination,
	}

	switch requester.Role {
	case models.RoleOwner:
		filter.OwnerID = &requester.ID
		if input.Status != nil {
			if !input.Status.Valid() {
				return nil, 0, ErrInvalidOrderStatus
			}
			filter.Status = input.Status
		}
	case models.RolePetsitter:
		open := models.OrderStatusOpen
		filter.Status = &open
	default:
		return nil, 0, ErrInvalidListerRole
	}

	orders, total, err := s.orderRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list care orders: %w", err)
	}

	return orders, total, nil
}

// UpdateCareOrderInput represents a partial care order update. Nil fields are
// left unchanged.
type UpdateCareOrderInput struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *models.OrderStatus
}

// Update applies the provided fields to a care order owned by the requester.
func (s *CareOrderService) Update(id uint64, requester *models.User, input UpdateCareOrderInput) (*models.CareOrder, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !order.CanMutate(requester) {
		return nil, ErrNotOrderOwner
	}

	if input.Title != nil {
		order.Title = *input.Title
	}
	if input.Description != nil {
		order.Description = *input.Description
	}
	if input.StartDate != nil {
		order.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		order.EndDate = *input.EndDate
	}
	if order.EndDate.Before(order.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidOrderStatus
		}
		order.Status = *input.Status
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update care order: %w", err)
	}

	return s.orderRepo.FindByID(order.ID)
}

// Delete removes a care order owned by the requester. Associated proposals and
// messages are not touched here; the chat bulk delete handles message cleanup.
func (s *CareOrderService) Delete(id uint64, requester *models.User) error {
	order, err := s.Get(id)
	if err != nil {
		return err
	}

	if !order.CanMutate(requester) {
		return ErrNotOrderOwner
	}

	if err := s.orderRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete care order: %w", err)
	}

	return nil
}
