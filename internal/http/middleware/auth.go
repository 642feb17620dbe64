package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/http/response"
)

// ContextAdminIDKey — ключ id администратора в gin.Context.
const ContextAdminIDKey = "adminID"

// Authenticator проверяет access токен и возвращает id администратора.
type Authenticator interface {
	Authenticate(accessToken string) (int64, error)
}

// AuthMiddleware проверяет JWT access токен до того, как запрос дойдёт до обработчика.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "требуется авторизация")
			return
		}

		adminID, err := auth.Authenticate(strings.TrimPrefix(header, "Bearer "))
		if err != nil || adminID <= 0 {
			response.Unauthorized(c, "токен невалиден")
			return
		}

		c.Set(ContextAdminIDKey, adminID)
		c.Next()
	}
}

// AdminID извлекает id администратора, установленный AuthMiddleware.
func AdminID(c *gin.Context) (int64, bool) {
	raw, exists := c.Get(ContextAdminIDKey)
	if !exists {
		return 0, false
	}
	adminID, ok := raw.(int64)
	return adminID, ok && adminID > 0
}
