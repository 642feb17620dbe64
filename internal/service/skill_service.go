package service

import (
	"context"
	"strings"

	"github.com/ignatzorin/portfolio-backend/internal/domain/ordering"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// SkillRepository описывает хранилище навыков.
// Delete удаляет и строку выбора в разделе «Обо мне», сжимая его порядок.
type SkillRepository interface {
	SkillReader
	Create(ctx context.Context, s *models.Skill) error
	Update(ctx context.Context, s *models.Skill) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, placements []common.Placement) error
}

// CategoryResolver находит категорию по slug.
type CategoryResolver interface {
	GetBySlug(ctx context.Context, slug string) (*models.SkillCategory, error)
}

// SkillInput — поля навыка. Category задаётся slug'ом категории.
type SkillInput struct {
	Name         string
	Level        int
	Icon         string
	Category     string
	DisplayOrder int
}

// SkillService реализует CRUD навыков.
type SkillService struct {
	repo       SkillRepository
	categories CategoryResolver
}

func NewSkillService(repo SkillRepository, categories CategoryResolver) *SkillService {
	return &SkillService{repo: repo, categories: categories}
}

func (s *SkillService) List(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.repo.List(ctx)
	return skills, storageError(err)
}

func (s *SkillService) Get(ctx context.Context, id int64) (*models.Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return skill, nil
}

func (s *SkillService) Create(ctx context.Context, in SkillInput) (*models.Skill, error) {
	skill, err := s.build(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, storageError(err)
	}
	return skill, nil
}

// Update полностью заменяет поля навыка.
func (s *SkillService) Update(ctx context.Context, id int64, in SkillInput) (*models.Skill, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, storageError(err)
	}
	skill, err := s.build(ctx, in)
	if err != nil {
		return nil, err
	}
	skill.ID = id
	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, storageError(err)
	}
	return skill, nil
}

// Delete удаляет навык. Если он был выбран в «Обо мне», выбор сжимается.
func (s *SkillService) Delete(ctx context.Context, id int64) error {
	return storageError(s.repo.Delete(ctx, id))
}

// Reorder записывает общий порядок навыков.
func (s *SkillService) Reorder(ctx context.Context, placements []Placement) ([]models.Skill, error) {
	skills, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	current := make([]ordering.Entry, len(skills))
	for i, sk := range skills {
		current[i] = ordering.Entry{ItemID: sk.ID, DisplayOrder: sk.DisplayOrder}
	}

	normalized, err := normalizeReorder(current, placements)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Reorder(ctx, normalized); err != nil {
		return nil, reorderWriteError(err)
	}
	return s.List(ctx)
}

func (s *SkillService) build(ctx context.Context, in SkillInput) (*models.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if err := validation.ValidateRequired("название навыка", name, validation.MaxNameLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateSkillLevel(in.Level); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	icon := strings.TrimSpace(in.Icon)
	if err := validation.ValidateIcon(icon); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if in.DisplayOrder < 0 {
		return nil, apperror.Validation("displayOrder не может быть отрицательным")
	}

	skill := &models.Skill{
		Name:         name,
		Level:        in.Level,
		Icon:         icon,
		DisplayOrder: in.DisplayOrder,
	}

	slug := strings.TrimSpace(in.Category)
	if slug == "" {
		return skill, nil
	}
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.Validation("категория %q не найдена", slug)
		}
		return nil, storageError(err)
	}
	skill.CategoryID = &category.ID
	skill.Category = category.Slug
	return skill, nil
}
