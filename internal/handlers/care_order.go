package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/petlink/petlink-api/internal/dto"
	apierrors "github.com/petlink/petlink-api/internal/errors"
	"github.com/petlink/petlink-api/internal/middleware"
	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/services"
	"github.com/petlink/petlink-api/internal/utils"
)

// CareOrderHandler coordinates care-order HTTP handlers.
type CareOrderHandler struct {
	orderService *services.CareOrderService
}

// NewCareOrderHandler creates a new CareOrderHandler.
func NewCareOrderHandler(orderService *services.CareOrderService) *CareOrderHandler {
	return &CareOrderHandler{
		orderService: orderService,
	}
}

// CreateOrder creates a care order for the authenticated owner.
func (h *CareOrderHandler) CreateOrder(c *gin.Context) {
	requester, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}
	if requester.Role != models.RoleOwner {
		apierrors.Forbidden(c, "Only owners can create care orders")
		return
	}

	type CreateOrderRequest struct {
		Title       string             `json:"title" binding:"required,max=100"`
		Description string             `json:"description" binding:"max=500"`
		StartDate   time.Time          `json:"start_date" binding:"required"`
		EndDate     time.Time          `json:"end_date" binding:"required"`
		Status      models.OrderStatus `json:"status" binding:"omitempty,oneof=open in_progress completed canceled"`
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Create(requester.ID, services.CreateCareOrderInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCareOrderDTO(*order))
}

// GetOrder returns a care order by ID, including the owner projection.
func (h *CareOrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.Get(id)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCareOrderDTO(*order))
}

// ListOrders returns care orders visible to the requester with optional
// status and date filters.
func (h *CareOrderHandler) ListOrders(c *gin.Context) {
	requester, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	input := services.ListCareOrdersInput{
		SortDesc:   c.Query("sort") == "desc",
		Pagination: utils.GetPaginationParams(c),
	}

	if raw := c.Query("status"); raw != "" {
		status := models.OrderStatus(raw)
		if !status.Valid() {
			apierrors.BadRequest(c, "Invalid status filter")
			return
		}
		input.Status = &status
	}

	var err error
	dateParams := []struct {
		name string
		dest **time.Time
	}{
		{"date_from_start", &input.StartDateFrom},
		{"date_to_start", &input.StartDateTo},
		{"date_from_end", &input.EndDateFrom},
		{"date_to_end", &input.EndDateTo},
	}
	for _, p := range dateParams {
		if *p.dest, err = parseDateQuery(c, p.name); err != nil {
			apierrors.BadRequest(c, "Invalid date filter: "+p.name)
			return
		}
	}

	orders, total, err := h.orderService.List(requester, input)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCareOrderListResponse(orders, input.Pagination.Skip, input.Pagination.Limit, total))
}

// UpdateOrder applies a partial update to an order owned by the requester.
func (h *CareOrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateOrderRequest struct {
		Title       *string             `json:"title" binding:"omitempty,max=100"`
		Description *string             `json:"description" binding:"omitempty,max=500"`
		StartDate   *time.Time          `json:"start_date"`
		EndDate     *time.Time          `json:"end_date"`
		Status      *models.OrderStatus `json:"status" binding:"omitempty,oneof=open in_progress completed canceled"`
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Update(id, requester, services.UpdateCareOrderInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCareOrderDTO(*order))
}

// DeleteOrder removes an order owned by the requester.
func (h *CareOrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.orderService.Delete(id, requester); err != nil {
		respondOrderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotOrderOwner), errors.Is(err, services.ErrInvalidListerRole):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidOrderStatus), errors.Is(err, services.ErrInvalidDateRange):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
