package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// SkillHandler обслуживает навыки.
type SkillHandler struct {
	skills *service.SkillService
}

// NewSkillHandler создаёт новый хэндлер.
func NewSkillHandler(skills *service.SkillService) *SkillHandler {
	return &SkillHandler{skills: skills}
}

// List обрабатывает GET /api/admin/skills.
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skills.List(c.Request.Context())
	if err != nil {
		response.Error(c, "skills.list", err)
		return
	}
	response.Success(c, skills)
}

func (h *SkillHandler) Get(c *gin.Context) {
	skill, err := h.skills.Get(c.Request.Context(), middleware.ParamID(c, "id"))
	if err != nil {
		response.Error(c, "skills.get", err)
		return
	}
	response.Success(c, skill)
}

func (h *SkillHandler) Create(c *gin.Context) {
	const tag = "skills.create"

	var req dto.SkillRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	skill, err := h.skills.Create(c.Request.Context(), skillInput(req))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Created(c, skill)
}

func (h *SkillHandler) Update(c *gin.Context) {
	const tag = "skills.update"

	var req dto.SkillRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	skill, err := h.skills.Update(c.Request.Context(), middleware.ParamID(c, "id"), skillInput(req))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, skill)
}

// Delete обрабатывает DELETE /api/admin/skills/:id. Выбор «Обо мне» сжимается вместе с удалением.
func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.skills.Delete(c.Request.Context(), middleware.ParamID(c, "id")); err != nil {
		response.Error(c, "skills.delete", err)
		return
	}
	response.Message(c, "навык удалён")
}

// Reorder обрабатывает PUT /api/admin/skills/order.
func (h *SkillHandler) Reorder(c *gin.Context) {
	const tag = "skills.reorder"

	var req dto.ReorderRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	skills, err := h.skills.Reorder(c.Request.Context(), toPlacements(req.Items))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, skills)
}

func skillInput(req dto.SkillRequest) service.SkillInput {
	return service.SkillInput{
		Name:         req.Name,
		Level:        req.Level,
		Icon:         req.Icon,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
	}
}
