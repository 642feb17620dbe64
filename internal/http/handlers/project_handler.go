package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// ProjectHandler обслуживает раздел «Проекты».
type ProjectHandler struct {
	projects *service.ProjectService
}

// NewProjectHandler создаёт новый хэндлер.
func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		response.Error(c, "projects.list", err)
		return
	}
	response.Success(c, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projects.Get(c.Request.Context(), middleware.ParamID(c, "id"))
	if err != nil {
		response.Error(c, "projects.get", err)
		return
	}
	response.Success(c, project)
}

// GetBySlug обрабатывает GET /api/public/projects/:slug.
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	project, err := h.projects.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, "projects.get-by-slug", err)
		return
	}
	response.Success(c, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	const tag = "projects.create"

	var req dto.ProjectRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	project, err := h.projects.Create(c.Request.Context(), projectModel(req))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Created(c, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	const tag = "projects.update"

	var req dto.ProjectRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	project, err := h.projects.Update(c.Request.Context(), middleware.ParamID(c, "id"), projectModel(req))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), middleware.ParamID(c, "id")); err != nil {
		response.Error(c, "projects.delete", err)
		return
	}
	response.Message(c, "проект удалён")
}

// Reorder обрабатывает PUT /api/admin/projects/order.
func (h *ProjectHandler) Reorder(c *gin.Context) {
	const tag = "projects.reorder"

	var req dto.ReorderRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	projects, err := h.projects.Reorder(c.Request.Context(), toPlacements(req.Items))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, projects)
}

func projectModel(req dto.ProjectRequest) models.Project {
	tags := pq.StringArray(req.Tags)
	if tags == nil {
		tags = pq.StringArray{}
	}
	return models.Project{
		Title:        req.Title,
		Slug:         req.Slug,
		Summary:      req.Summary,
		Description:  req.Description,
		Image:        req.Image,
		Tags:         tags,
		LiveURL:      req.LiveURL,
		RepoURL:      req.RepoURL,
		Featured:     req.Featured,
		DisplayOrder: req.DisplayOrder,
	}
}
