package dto

import (
	"time"
)

// SelectSkillRequest — тело POST /api/admin/about/skills.
type SelectSkillRequest struct {
	SkillID int64 `json:"skillId" binding:"required"`
}

// SkillPlacementRequest — позиция выбранного навыка.
type SkillPlacementRequest struct {
	SkillID      int64 `json:"skillId" binding:"required"`
	DisplayOrder int   `json:"displayOrder"`
}

// ReorderSelectionRequest — тело PUT /api/admin/about/skills.
type ReorderSelectionRequest struct {
	Skills []SkillPlacementRequest `json:"skills" binding:"required,dive"`
}

// MoveRequest — сдвиг на одну позицию.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// PlacementRequest — позиция элемента коллекции.
type PlacementRequest struct {
	ID           int64 `json:"id" binding:"required"`
	DisplayOrder int   `json:"displayOrder"`
}

// ReorderRequest — тело PUT .../order для коллекций.
type ReorderRequest struct {
	Items []PlacementRequest `json:"items" binding:"required,dive"`
}

// CategoryRequest — создание и полное обновление категории.
type CategoryRequest struct {
	Name         string  `json:"name" binding:"required"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	DisplayOrder int     `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

// SkillRequest — создание и полное обновление навыка.
type SkillRequest struct {
	Name         string `json:"name" binding:"required"`
	Level        int    `json:"level"`
	Icon         string `json:"icon"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"displayOrder"`
}

// ProjectRequest — создание и полное обновление проекта.
type ProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Slug         string   `json:"slug"`
	Summary      string   `json:"summary"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Tags         []string `json:"tags"`
	LiveURL      *string  `json:"liveUrl"`
	RepoURL      *string  `json:"repoUrl"`
	Featured     bool     `json:"featured"`
	DisplayOrder int      `json:"displayOrder"`
}

// ExperienceRequest — запись опыта работы.
type ExperienceRequest struct {
	Company      string     `json:"company" binding:"required"`
	Role         string     `json:"role" binding:"required"`
	Location     string     `json:"location"`
	StartDate    time.Time  `json:"startDate" binding:"required"`
	EndDate      *time.Time `json:"endDate"`
	IsCurrent    bool       `json:"isCurrent"`
	Description  string     `json:"description"`
	DisplayOrder int        `json:"displayOrder"`
}

// TestimonialRequest — отзыв.
type TestimonialRequest struct {
	Author       string `json:"author" binding:"required"`
	Role         string `json:"role"`
	Company      string `json:"company"`
	Quote        string `json:"quote" binding:"required"`
	Avatar       string `json:"avatar"`
	Rating       int    `json:"rating"`
	DisplayOrder int    `json:"displayOrder"`
}

// AltTextRequest — обновление alt-текста файла.
type AltTextRequest struct {
	AltText string `json:"altText"`
}

// ContactRequest — форма обратной связи.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// MarkReadRequest — пометка сообщения прочитанным.
type MarkReadRequest struct {
	Read *bool `json:"read" binding:"required"`
}

// LoginRequest — вход администратора.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest — обновление или отзыв refresh токена.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
