package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// ExperienceHandler обслуживает таймлайн опыта работы.
type ExperienceHandler struct {
	experiences *service.ExperienceService
}

func NewExperienceHandler(experiences *service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experiences: experiences}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	items, err := h.experiences.List(c.Request.Context())
	if err != nil {
		response.Error(c, "experiences.list", err)
		return
	}
	response.Success(c, items)
}

func (h *ExperienceHandler) Get(c *gin.Context) {
	item, err := h.experiences.Get(c.Request.Context(), middleware.ParamID(c, "id"))
	if err != nil {
		response.Error(c, "experiences.get", err)
		return
	}
	response.Success(c, item)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	const tag = "experiences.create"

	var req dto.ExperienceRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	item, err := h.experiences.Create(c.Request.Context(), experienceModel(req))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Created(c, item)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	const tag = "experiences.update"

	var req dto.ExperienceRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	item, err := h.experiences.Update(c.Request.Context(), middleware.ParamID(c, "id"), experienceModel(req))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, item)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.experiences.Delete(c.Request.Context(), middleware.ParamID(c, "id")); err != nil {
		response.Error(c, "experiences.delete", err)
		return
	}
	response.Message(c, "запись удалена")
}

func (h *ExperienceHandler) Reorder(c *gin.Context) {
	const tag = "experiences.reorder"

	var req dto.ReorderRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	items, err := h.experiences.Reorder(c.Request.Context(), toPlacements(req.Items))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, items)
}

func experienceModel(req dto.ExperienceRequest) models.Experience {
	return models.Experience{
		Company:      req.Company,
		Role:         req.Role,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsCurrent:    req.IsCurrent,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}
}
