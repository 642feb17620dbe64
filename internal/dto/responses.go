package dto

import (
	"time"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// SelectionResponse — текущий выбор навыков после изменения.
type SelectionResponse struct {
	SelectedSkills []models.SelectedSkill `json:"selectedSkills"`
}

// UnreadCountResponse — количество непрочитанных сообщений.
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

// ContactAcceptedResponse — ответ публичной формы; данные сообщения наружу не отдаются.
type ContactAcceptedResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}
