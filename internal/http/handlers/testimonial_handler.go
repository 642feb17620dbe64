package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// TestimonialHandler обслуживает отзывы.
type TestimonialHandler struct {
	testimonials *service.TestimonialService
}

func NewTestimonialHandler(testimonials *service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

func (h *TestimonialHandler) List(c *gin.Context) {
	items, err := h.testimonials.List(c.Request.Context())
	if err != nil {
		response.Error(c, "testimonials.list", err)
		return
	}
	response.Success(c, items)
}

func (h *TestimonialHandler) Get(c *gin.Context) {
	item, err := h.testimonials.Get(c.Request.Context(), middleware.ParamID(c, "id"))
	if err != nil {
		response.Error(c, "testimonials.get", err)
		return
	}
	response.Success(c, item)
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	const tag = "testimonials.create"

	var req dto.TestimonialRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	item, err := h.testimonials.Create(c.Request.Context(), testimonialModel(req))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Created(c, item)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	const tag = "testimonials.update"

	var req dto.TestimonialRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	item, err := h.testimonials.Update(c.Request.Context(), middleware.ParamID(c, "id"), testimonialModel(req))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, item)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.testimonials.Delete(c.Request.Context(), middleware.ParamID(c, "id")); err != nil {
		response.Error(c, "testimonials.delete", err)
		return
	}
	response.Message(c, "отзыв удалён")
}

func (h *TestimonialHandler) Reorder(c *gin.Context) {
	const tag = "testimonials.reorder"

	var req dto.ReorderRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	items, err := h.testimonials.Reorder(c.Request.Context(), toPlacements(req.Items))
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, items)
}

func testimonialModel(req dto.TestimonialRequest) models.Testimonial {
	return models.Testimonial{
		Author:       req.Author,
		Role:         req.Role,
		Company:      req.Company,
		Quote:        req.Quote,
		Avatar:       req.Avatar,
		Rating:       req.Rating,
		DisplayOrder: req.DisplayOrder,
	}
}
