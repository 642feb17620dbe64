package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// AboutSkillHandler обслуживает выбор навыков для блока «Tech Stack & Expertise».
type AboutSkillHandler struct {
	about *service.AboutSkillService
}

// NewAboutSkillHandler создаёт новый хэндлер.
func NewAboutSkillHandler(about *service.AboutSkillService) *AboutSkillHandler {
	return &AboutSkillHandler{about: about}
}

// Overview обрабатывает GET /api/admin/about/skills.
func (h *AboutSkillHandler) Overview(c *gin.Context) {
	overview, err := h.about.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, "about-skills.overview", err)
		return
	}
	response.Success(c, overview)
}

// Select обрабатывает POST /api/admin/about/skills.
func (h *AboutSkillHandler) Select(c *gin.Context) {
	const tag = "about-skills.select"

	var req dto.SelectSkillRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	selected, err := h.about.Select(c.Request.Context(), req.SkillID)
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, dto.SelectionResponse{SelectedSkills: selected})
}

// Deselect обрабатывает DELETE /api/admin/about/skills?skillId=.
func (h *AboutSkillHandler) Deselect(c *gin.Context) {
	const tag = "about-skills.deselect"

	skillID, ok := queryInt64(c, tag, "skillId")
	if !ok {
		return
	}

	selected, err := h.about.Deselect(c.Request.Context(), skillID)
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, dto.SelectionResponse{SelectedSkills: selected})
}

// ReplaceOrder обрабатывает PUT /api/admin/about/skills.
func (h *AboutSkillHandler) ReplaceOrder(c *gin.Context) {
	const tag = "about-skills.reorder"

	var req dto.ReorderSelectionRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	placements := make([]service.SkillPlacement, len(req.Skills))
	for i, s := range req.Skills {
		placements[i] = service.SkillPlacement{SkillID: s.SkillID, DisplayOrder: s.DisplayOrder}
	}

	selected, err := h.about.ReplaceOrder(c.Request.Context(), placements)
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, dto.SelectionResponse{SelectedSkills: selected})
}

// Move обрабатывает POST /api/admin/about/skills/:skillId/move.
func (h *AboutSkillHandler) Move(c *gin.Context) {
	const tag = "about-skills.move"

	var req dto.MoveRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	selected, err := h.about.Move(c.Request.Context(), middleware.ParamID(c, "skillId"), req.Direction)
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, dto.SelectionResponse{SelectedSkills: selected})
}
