package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// CategoryHandler обслуживает категории навыков.
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler создаёт новый хэндлер.
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List обрабатывает GET /api/admin/skill-categories. ?active=true — только активные.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.Error(c, "categories.list", err)
		return
	}
	response.Success(c, categories)
}

// ListActive обрабатывает GET /api/public/skill-categories.
func (h *CategoryHandler) ListActive(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context(), true)
	if err != nil {
		response.Error(c, "categories.list-active", err)
		return
	}
	response.Success(c, categories)
}

// Get обрабатывает GET /api/admin/skill-categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.categories.Get(c.Request.Context(), middleware.ParamID(c, "id"))
	if err != nil {
		response.Error(c, "categories.get", err)
		return
	}
	response.Success(c, category)
}

// Create обрабатывает POST /api/admin/skill-categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	const tag = "categories.create"

	var req dto.CategoryRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	category, err := h.categories.Create(c.Request.Context(), categoryInput(req))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Created(c, category)
}

// Update обрабатывает PUT /api/admin/skill-categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	const tag = "categories.update"

	var req dto.CategoryRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	category, err := h.categories.Update(c.Request.Context(), middleware.ParamID(c, "id"), categoryInput(req))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, category)
}

// Delete обрабатывает DELETE /api/admin/skill-categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), middleware.ParamID(c, "id")); err != nil {
		response.Error(c, "categories.delete", err)
		return
	}
	response.Message(c, "категория удалена")
}

func categoryInput(req dto.CategoryRequest) service.CategoryInput {
	return service.CategoryInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}
}
