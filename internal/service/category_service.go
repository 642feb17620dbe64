package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// CategoryRepository описывает хранилище категорий навыков.
type CategoryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.SkillCategory, error)
	GetByID(ctx context.Context, id int64) (*models.SkillCategory, error)
	GetBySlug(ctx context.Context, slug string) (*models.SkillCategory, error)
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
	Create(ctx context.Context, c *models.SkillCategory) error
	Update(ctx context.Context, c *models.SkillCategory) error
	CountSkills(ctx context.Context, categoryID int64) (int, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryInput — полный набор полей категории при создании и обновлении.
// Пустой Slug выводится из Name.
type CategoryInput struct {
	Name         string
	Slug         string
	Description  *string
	Icon         *string
	DisplayOrder int
	IsActive     *bool
}

// CategoryService управляет жизненным циклом категорий навыков.
type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List возвращает категории; activeOnly — только активные (публичная часть).
func (s *CategoryService) List(ctx context.Context, activeOnly bool) ([]models.SkillCategory, error) {
	categories, err := s.repo.List(ctx, activeOnly)
	return categories, storageError(err)
}

// Get возвращает категорию по id.
func (s *CategoryService) Get(ctx context.Context, id int64) (*models.SkillCategory, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return category, nil
}

// Create создаёт категорию. Повтор slug даёт Conflict.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*models.SkillCategory, error) {
	category, err := buildCategory(in)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSlugFree(ctx, category.Slug, 0); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, slugConflict(category.Slug)
		}
		return nil, storageError(err)
	}
	return category, nil
}

// Update полностью заменяет поля категории по id.
func (s *CategoryService) Update(ctx context.Context, id int64, in CategoryInput) (*models.SkillCategory, error) {
	category, err := buildCategory(in)
	if err != nil {
		return nil, err
	}
	category.ID = id

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, storageError(err)
	}
	if err := s.ensureSlugFree(ctx, category.Slug, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, slugConflict(category.Slug)
		}
		return nil, storageError(err)
	}
	return category, nil
}

// Delete удаляет категорию, если на неё не ссылается ни один навык.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return storageError(err)
	}

	count, err := s.repo.CountSkills(ctx, id)
	if err != nil {
		return storageError(err)
	}
	if count > 0 {
		return categoryInUse(count)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		// навык мог появиться между проверкой и удалением
		if errors.Is(err, common.ErrReferenced) {
			return categoryInUse(1)
		}
		return storageError(err)
	}
	return nil
}

func (s *CategoryService) ensureSlugFree(ctx context.Context, slug string, excludeID int64) error {
	taken, err := s.repo.SlugTaken(ctx, slug, excludeID)
	if err != nil {
		return storageError(err)
	}
	if taken {
		return slugConflict(slug)
	}
	return nil
}

func buildCategory(in CategoryInput) (*models.SkillCategory, error) {
	name := strings.TrimSpace(in.Name)
	if err := validation.ValidateRequired("название категории", name, validation.MaxNameLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}

	slug := validation.Slugify(in.Slug)
	if strings.TrimSpace(in.Slug) == "" {
		slug = validation.Slugify(name)
	}
	if err := validation.ValidateSlug(slug); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}

	if err := validation.ValidateOptional("описание", in.Description, validation.MaxShortTextLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if in.Icon != nil {
		if err := validation.ValidateIcon(*in.Icon); err != nil {
			return nil, apperror.Validation("%s", err.Error())
		}
	}

	if in.DisplayOrder < 0 {
		return nil, apperror.Validation("displayOrder не может быть отрицательным")
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	return &models.SkillCategory{
		Name:         name,
		Slug:         slug,
		Description:  trimmedOrNil(in.Description),
		Icon:         trimmedOrNil(in.Icon),
		DisplayOrder: in.DisplayOrder,
		IsActive:     isActive,
	}, nil
}

func slugConflict(slug string) error {
	return apperror.Conflict("категория со slug %q уже существует", slug)
}

func categoryInUse(count int) error {
	return apperror.Conflict("категория используется навыками (%d), сначала перенесите или удалите их", count)
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
