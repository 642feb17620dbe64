package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/ws"
)

// WSHandler отвечает за установку WebSocket соединений админки.
type WSHandler struct {
	hub      *ws.Hub
	auth     middleware.Authenticator
	upgrader websocket.Upgrader
}

// NewWSHandler создаёт новый хэндлер. allowedOrigins пустой — проверка Origin отключена.
func NewWSHandler(hub *ws.Hub, auth middleware.Authenticator, allowedOrigins []string) *WSHandler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[origin] = true
	}
	return &WSHandler{
		hub:  hub,
		auth: auth,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(origins) == 0 || origin == "" || origins[origin]
			},
		},
	}
}

// Handle обслуживает GET /api/admin/ws?token=...
// Браузер не умеет передавать заголовок Authorization при апгрейде, поэтому токен в query.
func (h *WSHandler) Handle(c *gin.Context) {
	rawToken := c.Query("token")
	if rawToken == "" {
		response.Unauthorized(c, "access токен обязателен")
		return
	}

	adminID, err := h.auth.Authenticate(rawToken)
	if err != nil || adminID <= 0 {
		response.Unauthorized(c, "невалидный access токен")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		logger.Handler("ws.upgrade").WithFields(logrus.Fields{"error": err.Error()}).Warn("websocket upgrade failed")
		return
	}

	client := ws.NewClient(conn, h.hub, adminID)
	h.hub.Register(client)

	client.Run(c.Request.Context())
}
