package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

// IDParam проверяет, что параметр пути — положительное целое.
// Использование: router.GET("/projects/:id", IDParam("id"), handler.Get)
func IDParam(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(paramName)
		if raw == "" {
			response.Error(c, "id-param", apperror.Validation("параметр %s обязателен", paramName))
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, "id-param", apperror.Validation("параметр %s должен быть положительным числом", paramName))
			return
		}

		c.Next()
	}
}

// ParamID возвращает уже проверенный IDParam параметр пути.
func ParamID(c *gin.Context, paramName string) int64 {
	id, _ := strconv.ParseInt(c.Param(paramName), 10, 64)
	return id
}
