package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// AuthHandler предоставляет HTTP слой для входа администратора.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler создаёт хэндлер.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login обрабатывает POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	const tag = "auth.login"

	var req dto.LoginRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	result, err := h.auth.Login(c.Request.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}, sessionMeta(c))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, result)
}

// Refresh обрабатывает POST /api/auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	const tag = "auth.refresh"

	var req dto.RefreshRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	tokens, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken, sessionMeta(c))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, gin.H{"tokens": tokens})
}

// Logout обрабатывает POST /api/auth/logout. Отзывает переданный refresh токен.
func (h *AuthHandler) Logout(c *gin.Context) {
	const tag = "auth.logout"

	var req dto.RefreshRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Message(c, "сессия завершена")
}

// Me обрабатывает GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	const tag = "auth.me"

	adminID, ok := currentAdminID(c, tag)
	if !ok {
		return
	}

	admin, err := h.auth.Me(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, admin)
}

func sessionMeta(c *gin.Context) service.SessionMeta {
	return service.SessionMeta{
		UserAgent: c.GetHeader("User-Agent"),
		IP:        c.ClientIP(),
	}
}
