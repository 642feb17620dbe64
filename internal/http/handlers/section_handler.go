package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// SectionHandler обслуживает singleton-разделы сайта.
type SectionHandler struct {
	sections *service.SectionService
}

// NewSectionHandler создаёт новый хэндлер.
func NewSectionHandler(sections *service.SectionService) *SectionHandler {
	return &SectionHandler{sections: sections}
}

func (h *SectionHandler) Hero(c *gin.Context) {
	getSection(c, "sections.hero", h.sections.Hero)
}

func (h *SectionHandler) UpdateHero(c *gin.Context) {
	putSection(c, "sections.update-hero", h.sections.UpdateHero)
}

func (h *SectionHandler) About(c *gin.Context) {
	getSection(c, "sections.about", h.sections.About)
}

func (h *SectionHandler) UpdateAbout(c *gin.Context) {
	putSection(c, "sections.update-about", h.sections.UpdateAbout)
}

func (h *SectionHandler) Contact(c *gin.Context) {
	getSection(c, "sections.contact", h.sections.Contact)
}

func (h *SectionHandler) UpdateContact(c *gin.Context) {
	putSection(c, "sections.update-contact", h.sections.UpdateContact)
}

func (h *SectionHandler) Footer(c *gin.Context) {
	getSection(c, "sections.footer", h.sections.Footer)
}

func (h *SectionHandler) UpdateFooter(c *gin.Context) {
	putSection(c, "sections.update-footer", h.sections.UpdateFooter)
}

// Header обрабатывает GET /api/admin/sections/:key (experience-section и т.п.).
func (h *SectionHandler) Header(c *gin.Context) {
	key := models.SectionKey(c.Param("key"))
	getSection(c, "sections.header", func(ctx context.Context) (*models.SectionHeader, error) {
		return h.sections.Header(ctx, key)
	})
}

// UpdateHeader обрабатывает PUT /api/admin/sections/:key.
func (h *SectionHandler) UpdateHeader(c *gin.Context) {
	key := models.SectionKey(c.Param("key"))
	putSection(c, "sections.update-header", func(ctx context.Context, header models.SectionHeader) (*models.SectionHeader, error) {
		return h.sections.UpdateHeader(ctx, key, header)
	})
}

func getSection[T any](c *gin.Context, tag string, load func(context.Context) (*T, error)) {
	section, err := load(c.Request.Context())
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, section)
}

func putSection[T any](c *gin.Context, tag string, save func(context.Context, T) (*T, error)) {
	var req T
	if !bindJSON(c, tag, &req) {
		return
	}
	section, err := save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, section)
}
