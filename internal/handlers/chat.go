package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/petlink/petlink-api/internal/dto"
	apierrors "github.com/petlink/petlink-api/internal/errors"
	"github.com/petlink/petlink-api/internal/middleware"
	"github.com/petlink/petlink-api/internal/services"
	"github.com/petlink/petlink-api/internal/utils"
)

// ChatHandler coordinates chat message HTTP handlers.
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// CreateMessage creates a message. The sender is always the authenticated
// requester regardless of the payload.
func (h *ChatHandler) CreateMessage(c *gin.Context) {
	requester, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateMessageRequest struct {
		OrderID uint64 `json:"order_id" binding:"required"`
		Content string `json:"content" binding:"required,min=1,max=1000"`
	}

	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.chatService.Create(requester.ID, services.CreateMessageInput{
		OrderID: req.OrderID,
		Content: req.Content,
	})
	if err != nil {
		respondChatError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageDTO(*message))
}

// GetMessage returns a message by ID.
func (h *ChatHandler) GetMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	message, err := h.chatService.Get(id)
	if err != nil {
		respondChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageDTO(*message))
}

// ListMessages returns the messages of a care order, oldest first.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	orderID, ok := parseOrderIDQuery(c)
	if !ok {
		return
	}

	messages, err := h.chatService.ListByOrder(orderID, utils.GetPaginationParams(c))
	if err != nil {
		respondChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageDTOs(messages))
}

// DeleteMessagesByOrder removes all messages under a care order. Used before
// deleting the order to avoid constraint errors.
func (h *ChatHandler) DeleteMessagesByOrder(c *gin.Context) {
	orderID, ok := parseOrderIDQuery(c)
	if !ok {
		return
	}

	if err := h.chatService.DeleteByOrder(orderID); err != nil {
		respondChatError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteMessage removes a single message if the requester is its sender.
func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	requester, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.chatService.Delete(id, requester.ID); err != nil {
		respondChatError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseOrderIDQuery(c *gin.Context) (uint64, bool) {
	orderID, err := strconv.ParseUint(c.Query("order_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "order_id query parameter is required")
		return 0, false
	}
	return orderID, true
}

func respondChatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMessageNotFound):
		apierrors.NotFound(c, "Message not found or access denied")
	case errors.Is(err, services.ErrInvalidContent):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
