package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

type memMedia struct {
	files map[int64]models.MediaFile
	next  int64
}

func (m *memMedia) Create(_ context.Context, media *models.MediaFile) error {
	m.next++
	media.ID = m.next
	m.files[media.ID] = *media
	return nil
}

func (m *memMedia) GetByID(_ context.Context, id int64) (*models.MediaFile, error) {
	f, ok := m.files[id]
	if !ok {
		return nil, apperror.ErrMediaNotFound
	}
	return &f, nil
}

func (m *memMedia) List(context.Context) ([]models.MediaFile, error) {
	out := make([]models.MediaFile, 0, len(m.files))
	for _, f := range m.files {
		out = append(out, f)
	}
	return out, nil
}

func (m *memMedia) UpdateAltText(_ context.Context, id int64, altText string) (*models.MediaFile, error) {
	f, ok := m.files[id]
	if !ok {
		return nil, apperror.ErrMediaNotFound
	}
	f.AltText = altText
	m.files[id] = f
	return &f, nil
}

func (m *memMedia) Delete(_ context.Context, id int64) error {
	if _, ok := m.files[id]; !ok {
		return apperror.ErrMediaNotFound
	}
	delete(m.files, id)
	return nil
}

func newMediaRouter(t *testing.T) (*gin.Engine, *memMedia) {
	t.Helper()
	store, err := storage.NewMediaStorage(t.TempDir(), "/uploads", 1)
	require.NoError(t, err)
	repo := &memMedia{files: make(map[int64]models.MediaFile)}
	h := NewMediaHandler(service.NewMediaService(repo, store), store.MaxUploadBytes())

	r := gin.New()
	admin := r.Group("/api/admin", middleware.AuthMiddleware(staticAuth{}))
	admin.POST("/media", h.Upload)
	admin.DELETE("/media/:id", middleware.IDParam("id"), h.Delete)
	return r, repo
}

func multipartBody(t *testing.T, field, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.WriteField("altText", "логотип"))
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func upload(r http.Handler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/media", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMediaHandler_UploadAndDelete(t *testing.T) {
	r, repo := newMediaRouter(t)

	body, ct := multipartBody(t, "file", "logo.png", append(pngHeader, make([]byte, 64)...))
	w := upload(r, body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var media models.MediaFile
	require.NoError(t, json.Unmarshal(env.Data, &media))
	assert.Equal(t, "image/png", media.MimeType)
	assert.Equal(t, "логотип", media.AltText)
	assert.Regexp(t, `^/uploads/.+\.png$`, media.FilePath)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/admin/media/1", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.files)
}

func TestMediaHandler_UploadRejects(t *testing.T) {
	r, repo := newMediaRouter(t)

	tests := []struct {
		name     string
		field    string
		file     string
		content  []byte
		wantCode int
		wantErr  string
	}{
		{"нет поля file", "", "", nil, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"exe под видом png", "file", "logo.png", []byte("MZ\x90\x00 not an image at all"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"неразрешённое расширение", "file", "doc.pdf", []byte("%PDF-1.4"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"больше лимита", "file", "big.png", append(pngHeader, make([]byte, 1<<20)...), http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ct := multipartBody(t, tt.field, tt.file, tt.content)
			w := upload(r, body, ct)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())

			var env envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.Equal(t, tt.wantErr, env.Code)
		})
	}
	assert.Empty(t, repo.files)
}
