package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/ignatzorin/portfolio-backend/internal/domain/ordering"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

const maxSlugAttempts = 50

// ProjectRepository описывает хранилище проектов.
type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, placements []common.Placement) error
}

// ProjectService реализует CRUD проектов.
type ProjectService struct {
	repo ProjectRepository
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.List(ctx)
	return projects, storageError(err)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return project, nil
}

func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	project, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, storageError(err)
	}
	return project, nil
}

// Create сохраняет проект. Slug выводится из названия и при совпадении получает суффикс -2, -3, ...
func (s *ProjectService) Create(ctx context.Context, in models.Project) (*models.Project, error) {
	project, err := normalizeProject(in)
	if err != nil {
		return nil, err
	}
	if project.Slug, err = s.uniqueSlug(ctx, project.Slug, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, project); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, apperror.Conflict("проект со slug %q уже существует", project.Slug)
		}
		return nil, storageError(err)
	}
	return project, nil
}

// Update полностью заменяет поля проекта.
func (s *ProjectService) Update(ctx context.Context, id int64, in models.Project) (*models.Project, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, storageError(err)
	}
	project, err := normalizeProject(in)
	if err != nil {
		return nil, err
	}
	project.ID = id
	if project.Slug, err = s.uniqueSlug(ctx, project.Slug, id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, project); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, apperror.Conflict("проект со slug %q уже существует", project.Slug)
		}
		return nil, storageError(err)
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return storageError(s.repo.Delete(ctx, id))
}

func (s *ProjectService) Reorder(ctx context.Context, placements []Placement) ([]models.Project, error) {
	return reorderCollection[models.Project](ctx, s.repo, placements, func(p models.Project) ordering.Entry {
		return ordering.Entry{ItemID: p.ID, DisplayOrder: p.DisplayOrder}
	})
}

func (s *ProjectService) uniqueSlug(ctx context.Context, base string, excludeID int64) (string, error) {
	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		taken, err := s.repo.SlugTaken(ctx, candidate, excludeID)
		if err != nil {
			return "", storageError(err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", apperror.Conflict("не удалось подобрать свободный slug для %q", base)
}

func normalizeProject(in models.Project) (*models.Project, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validation.ValidateRequired("название проекта", in.Title, validation.MaxTitleLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}

	slug := validation.Slugify(in.Slug)
	if strings.TrimSpace(in.Slug) == "" {
		slug = validation.Slugify(in.Title)
	}
	if err := validation.ValidateSlug(slug); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	in.Slug = slug

	if err := validation.ValidateLength("краткое описание", in.Summary, 0, validation.MaxShortTextLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateLength("описание", in.Description, 0, validation.MaxLongTextLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateImageRef("изображение", in.Image); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateURL("ссылка на демо", in.LiveURL); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateURL("ссылка на репозиторий", in.RepoURL); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateTags(in.Tags); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if in.DisplayOrder < 0 {
		return nil, apperror.Validation("displayOrder не может быть отрицательным")
	}

	tags := make(pq.StringArray, 0, len(in.Tags))
	for _, tag := range in.Tags {
		tags = append(tags, strings.TrimSpace(tag))
	}
	in.Tags = tags
	in.LiveURL = trimmedOrNil(in.LiveURL)
	in.RepoURL = trimmedOrNil(in.RepoURL)
	return &in, nil
}
