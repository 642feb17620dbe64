package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// MessageHandler обслуживает форму обратной связи и входящие в админке.
type MessageHandler struct {
	messages *service.MessageService
}

// NewMessageHandler создаёт новый хэндлер.
func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Submit обрабатывает публичный POST /api/contact.
func (h *MessageHandler) Submit(c *gin.Context) {
	const tag = "messages.submit"

	var req dto.ContactRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	msg, err := h.messages.Submit(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Created(c, dto.ContactAcceptedResponse{ID: msg.ID, CreatedAt: msg.CreatedAt})
}

// List обрабатывает GET /api/admin/messages?unread=true&limit=&offset=.
func (h *MessageHandler) List(c *gin.Context) {
	list, err := h.messages.List(
		c.Request.Context(),
		c.Query("unread") == "true",
		queryInt(c, "limit", 0),
		queryInt(c, "offset", 0),
	)
	if err != nil {
		response.Error(c, "messages.list", err)
		return
	}
	response.Success(c, list)
}

func (h *MessageHandler) Get(c *gin.Context) {
	msg, err := h.messages.Get(c.Request.Context(), middleware.ParamID(c, "id"))
	if err != nil {
		response.Error(c, "messages.get", err)
		return
	}
	response.Success(c, msg)
}

// UnreadCount обрабатывает GET /api/admin/messages/unread-count.
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	count, err := h.messages.UnreadCount(c.Request.Context())
	if err != nil {
		response.Error(c, "messages.unread-count", err)
		return
	}
	response.Success(c, dto.UnreadCountResponse{Unread: count})
}

// MarkRead обрабатывает PUT /api/admin/messages/:id/read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	const tag = "messages.mark-read"

	var req dto.MarkReadRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	msg, err := h.messages.MarkRead(c.Request.Context(), middleware.ParamID(c, "id"), *req.Read)
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, msg)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messages.Delete(c.Request.Context(), middleware.ParamID(c, "id")); err != nil {
		response.Error(c, "messages.delete", err)
		return
	}
	response.Message(c, "сообщение удалено")
}
