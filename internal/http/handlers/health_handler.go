package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/response"
)

// Pinger проверяет доступность базы данных.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	db      Pinger
	clients func() int
}

// NewHealthHandler создаёт новый health handler. clients может быть nil.
func NewHealthHandler(db Pinger, clients func() int) *HealthHandler {
	return &HealthHandler{db: db, clients: clients}
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
		status = "unhealthy"
	} else {
		checks["database"] = "healthy"
	}

	if h.clients != nil {
		checks["ws_clients"] = strconv.Itoa(h.clients())
	}

	body := dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	}

	if status == "unhealthy" {
		c.JSON(http.StatusServiceUnavailable, response.Response{Success: false, Data: body, Error: "база данных недоступна"})
		return
	}
	response.Success(c, body)
}
