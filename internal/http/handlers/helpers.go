package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// bindJSON разбирает тело запроса; при ошибке сам отвечает 400.
func bindJSON(c *gin.Context, tag string, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, tag, response.BindError(err))
		return false
	}
	return true
}

// currentAdminID извлекает id администратора из контекста.
func currentAdminID(c *gin.Context, tag string) (int64, bool) {
	adminID, ok := middleware.AdminID(c)
	if !ok {
		response.Error(c, tag, apperror.ErrUnauthorized)
		return 0, false
	}
	return adminID, true
}

// queryInt64 читает обязательный положительный числовой query-параметр.
func queryInt64(c *gin.Context, tag, key string) (int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		response.Error(c, tag, apperror.Validation("параметр %s обязателен", key))
		return 0, false
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		response.Error(c, tag, apperror.Validation("параметр %s должен быть положительным числом", key))
		return 0, false
	}
	return value, true
}

// queryInt читает необязательный числовой query-параметр.
func queryInt(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func toPlacements(items []dto.PlacementRequest) []service.Placement {
	placements := make([]service.Placement, len(items))
	for i, item := range items {
		placements[i] = service.Placement{ID: item.ID, DisplayOrder: item.DisplayOrder}
	}
	return placements
}
