package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/http/response"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// запас на служебные части multipart формы
const multipartOverhead = 64 * 1024

// MediaHandler управляет загрузкой и удалением медиа-файлов.
type MediaHandler struct {
	media    *service.MediaService
	maxBytes int64
}

// NewMediaHandler создаёт новый хэндлер.
func NewMediaHandler(media *service.MediaService, maxBytes int64) *MediaHandler {
	return &MediaHandler{media: media, maxBytes: maxBytes}
}

func (h *MediaHandler) List(c *gin.Context) {
	files, err := h.media.List(c.Request.Context())
	if err != nil {
		response.Error(c, "media.list", err)
		return
	}
	response.Success(c, files)
}

// Upload обрабатывает POST /api/admin/media.
func (h *MediaHandler) Upload(c *gin.Context) {
	const tag = "media.upload"

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	file, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Error(c, tag, apperror.New(apperror.ErrCodeTooLarge, "файл слишком большой"))
			return
		}
		response.Error(c, tag, apperror.Validation("поле file обязательно"))
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, tag, apperror.Validation("не удалось прочитать файл"))
		return
	}
	defer src.Close()

	media, err := h.media.Upload(c.Request.Context(), service.UploadInput{
		FileName: file.Filename,
		Size:     file.Size,
		AltText:  c.PostForm("altText"),
		Content:  src,
	})
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Created(c, media)
}

// UpdateAltText обрабатывает PUT /api/admin/media/:id.
func (h *MediaHandler) UpdateAltText(c *gin.Context) {
	const tag = "media.update-alt"

	var req dto.AltTextRequest
	if !bindJSON(c, tag, &req) {
		return
	}

	media, err := h.media.UpdateAltText(c.Request.Context(), middleware.ParamID(c, "id"), req.AltText)
	if err != nil {
		response.Error(c, tag, err)
		return
	}
	response.Success(c, media)
}

// Delete обрабатывает DELETE /api/admin/media/:id.
func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.media.Delete(c.Request.Context(), middleware.ParamID(c, "id")); err != nil {
		response.Error(c, "media.delete", err)
		return
	}
	response.Message(c, "файл удалён")
}
