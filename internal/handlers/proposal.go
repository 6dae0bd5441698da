package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/petlink/petlink-api/internal/dto"
	apierrors "github.com/petlink/petlink-api/internal/errors"
	"github.com/petlink/petlink-api/internal/middleware"
	"github.com/petlink/petlink-api/internal/models"
	"github.com/petlink/petlink-api/internal/services"
	"github.com/petlink/petlink-api/internal/utils"
)

// ProposalHandler coordinates proposal HTTP handlers.
type ProposalHandler struct {
	proposalService *services.ProposalService
}

// NewProposalHandler creates a new ProposalHandler.
func NewProposalHandler(proposalService *services.ProposalService) *ProposalHandler {
	return &ProposalHandler{
		proposalService: proposalService,
	}
}

// CreateProposal creates a proposal. The payload's petsitter must be the
// authenticated requester; that check belongs here, not in the service.
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	requester, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateProposalRequest struct {
		OrderID     uint64                `json:"order_id" binding:"required"`
		PetsitterID uint64                `json:"petsitter_id" binding:"required"`
		Price       float64               `json:"price" binding:"required,gt=0"`
		Comment     string                `json:"comment" binding:"max=500"`
		Status      models.ProposalStatus `json:"status" binding:"omitempty,oneof=pending accepted rejected canceled"`
	}

	var req CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.PetsitterID != requester.ID {
		apierrors.Forbidden(c, "Petsitter ID does not match current user")
		return
	}

	proposal, err := h.proposalService.Create(services.CreateProposalInput{
		OrderID:     req.OrderID,
		PetsitterID: req.PetsitterID,
		Price:       req.Price,
		Comment:     req.Comment,
		Status:      req.Status,
	})
	if err != nil {
		respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProposalDTO(*proposal))
}

// GetProposal returns a proposal by ID.
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	proposal, err := h.proposalService.Get(id)
	if err != nil {
		respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalDTO(*proposal))
}

// ListProposals returns proposals, optionally filtered by care order.
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	var orderID *uint64
	if raw := c.Query("order_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid order_id")
			return
		}
		orderID = &id
	}

	proposals, err := h.proposalService.List(orderID, utils.GetPaginationParams(c))
	if err != nil {
		respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalDTOs(proposals))
}

// UpdateProposal applies a partial update to a proposal authored by the
// requester.
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateProposalRequest struct {
		Price   *float64               `json:"price" binding:"omitempty,gt=0"`
		Comment *string                `json:"comment" binding:"omitempty,max=500"`
		Status  *models.ProposalStatus `json:"status" binding:"omitempty,oneof=pending accepted rejected canceled"`
	}

	var req UpdateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.Update(id, requester, services.UpdateProposalInput{
		Price:   req.Price,
		Comment: req.Comment,
		Status:  req.Status,
	})
	if err != nil {
		respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalDTO(*proposal))
}

// DeleteProposal removes a proposal authored by the requester.
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.proposalService.Delete(id, requester); err != nil {
		respondProposalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondProposalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProposalNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotProposalAuthor):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidPrice), errors.Is(err, services.ErrInvalidProposalStatus):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
