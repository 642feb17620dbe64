package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) List(ctx context.Context, activeOnly bool) ([]models.SkillCategory, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]models.SkillCategory), args.Error(1)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id int64) (*models.SkillCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SkillCategory), args.Error(1)
}

func (m *mockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.SkillCategory, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SkillCategory), args.Error(1)
}

func (m *mockCategoryRepo) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *models.SkillCategory) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 7
	}
	return args.Error(0)
}

func (m *mockCategoryRepo) Update(ctx context.Context, c *models.SkillCategory) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) CountSkills(ctx context.Context, categoryID int64) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newCategoryRouter(repo *mockCategoryRepo) *gin.Engine {
	h := NewCategoryHandler(service.NewCategoryService(repo))

	r := gin.New()
	admin := r.Group("/api/admin", middleware.AuthMiddleware(staticAuth{}))
	admin.GET("/skill-categories", h.List)
	admin.POST("/skill-categories", h.Create)
	admin.PUT("/skill-categories/:id", middleware.IDParam("id"), h.Update)
	admin.DELETE("/skill-categories/:id", middleware.IDParam("id"), h.Delete)
	return r
}

func TestCategoryHandler_UnauthorizedNeverTouchesStorage(t *testing.T) {
	repo := new(mockCategoryRepo)
	r := newCategoryRouter(repo)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/admin/skill-categories"},
		{http.MethodPost, "/api/admin/skill-categories"},
		{http.MethodPut, "/api/admin/skill-categories/1"},
		{http.MethodDelete, "/api/admin/skill-categories/1"},
	} {
		w, env := doJSON(t, r, tc.method, tc.path, `{"name":"Go"}`, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code, tc.path)
		assert.False(t, env.Success)
	}
	repo.AssertExpectations(t)
	assert.Empty(t, repo.Calls)
}

func TestCategoryHandler_CreateDerivesSlug(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("SlugTaken", mock.Anything, "cloud-devops", int64(0)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.SkillCategory) bool {
		return c.Slug == "cloud-devops" && c.Name == "Cloud & DevOps" && c.IsActive
	})).Return(nil)
	r := newCategoryRouter(repo)

	w, env := doJSON(t, r, http.MethodPost, "/api/admin/skill-categories", `{"name":"Cloud & DevOps"}`, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"slug":"cloud-devops"`)
	repo.AssertExpectations(t)
}

func TestCategoryHandler_CreateDuplicateSlug(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("SlugTaken", mock.Anything, "cloud-devops", int64(0)).Return(true, nil)
	r := newCategoryRouter(repo)

	w, env := doJSON(t, r, http.MethodPost, "/api/admin/skill-categories", `{"name":"cloud devops"}`, true)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", env.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryHandler_CreateRequiresName(t *testing.T) {
	repo := new(mockCategoryRepo)
	r := newCategoryRouter(repo)

	w, env := doJSON(t, r, http.MethodPost, "/api/admin/skill-categories", `{"slug":"x"}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)
	assert.Empty(t, repo.Calls)
}

func TestCategoryHandler_DeleteGuard(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&models.SkillCategory{ID: 3, Slug: "backend"}, nil)
	repo.On("CountSkills", mock.Anything, int64(3)).Return(2, nil)
	r := newCategoryRouter(repo)

	w, env := doJSON(t, r, http.MethodDelete, "/api/admin/skill-categories/3", nil, true)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", env.Code)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryHandler_DeleteUnused(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&models.SkillCategory{ID: 3}, nil)
	repo.On("CountSkills", mock.Anything, int64(3)).Return(0, nil)
	repo.On("Delete", mock.Anything, int64(3)).Return(nil)
	r := newCategoryRouter(repo)

	w, env := doJSON(t, r, http.MethodDelete, "/api/admin/skill-categories/3", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Message)
	repo.AssertExpectations(t)
}

func TestCategoryHandler_StorageFailureIsInternal(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("List", mock.Anything, true).Return([]models.SkillCategory(nil), errors.New("connection refused"))
	r := newCategoryRouter(repo)

	w, env := doJSON(t, r, http.MethodGet, "/api/admin/skill-categories?active=true", nil, true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Code)
	assert.NotContains(t, env.Error, "connection refused")
}
