package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// PublicHandler отдаёт содержимое сайта без авторизации.
// Навыки из неактивных категорий сюда не попадают.
type PublicHandler struct {
	site *service.SiteService
}

func NewPublicHandler(site *service.SiteService) *PublicHandler {
	return &PublicHandler{site: site}
}

// Site обрабатывает GET /api/public/site.
func (h *PublicHandler) Site(c *gin.Context) {
	site, err := h.site.Load(c.Request.Context())
	if err != nil {
		response.Error(c, "public.site", err)
		return
	}
	response.Success(c, site)
}

// Skills обрабатывает GET /api/public/skills.
func (h *PublicHandler) Skills(c *gin.Context) {
	skills, err := h.site.VisibleSkills(c.Request.Context())
	if err != nil {
		response.Error(c, "public.skills", err)
		return
	}
	response.Success(c, skills)
}

// AboutSkills обрабатывает GET /api/public/about/skills.
func (h *PublicHandler) AboutSkills(c *gin.Context) {
	selected, err := h.site.VisibleAboutSkills(c.Request.Context())
	if err != nil {
		response.Error(c, "public.about-skills", err)
		return
	}
	response.Success(c, selected)
}
