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

// ExperienceRepository описывает хранилище записей опыта работы.
type ExperienceRepository interface {
	List(ctx context.Context) ([]models.Experience, error)
	GetByID(ctx context.Context, id int64) (*models.Experience, error)
	Create(ctx context.Context, e *models.Experience) error
	Update(ctx context.Context, e *models.Experience) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, placements []common.Placement) error
}

type ExperienceService struct {
	repo ExperienceRepository
}

func NewExperienceService(repo ExperienceRepository) *ExperienceService {
	return &ExperienceService{repo: repo}
}

func (s *ExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	items, err := s.repo.List(ctx)
	return items, storageError(err)
}

func (s *ExperienceService) Get(ctx context.Context, id int64) (*models.Experience, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return item, nil
}

func (s *ExperienceService) Create(ctx context.Context, in models.Experience) (*models.Experience, error) {
	item, err := normalizeExperience(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, storageError(err)
	}
	return item, nil
}

func (s *ExperienceService) Update(ctx context.Context, id int64, in models.Experience) (*models.Experience, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, storageError(err)
	}
	item, err := normalizeExperience(in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, storageError(err)
	}
	return item, nil
}

func (s *ExperienceService) Delete(ctx context.Context, id int64) error {
	return storageError(s.repo.Delete(ctx, id))
}

func (s *ExperienceService) Reorder(ctx context.Context, placements []Placement) ([]models.Experience, error) {
	return reorderCollection[models.Experience](ctx, s.repo, placements, func(e models.Experience) ordering.Entry {
		return ordering.Entry{ItemID: e.ID, DisplayOrder: e.DisplayOrder}
	})
}

func normalizeExperience(in models.Experience) (*models.Experience, error) {
	in.Company = strings.TrimSpace(in.Company)
	in.Role = strings.TrimSpace(in.Role)
	if err := validation.ValidateRequired("компания", in.Company, validation.MaxNameLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateRequired("должность", in.Role, validation.MaxNameLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateLength("описание", in.Description, 0, validation.MaxLongTextLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if in.StartDate.IsZero() {
		return nil, apperror.Validation("дата начала обязательна")
	}
	if in.IsCurrent {
		in.EndDate = nil
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, apperror.Validation("дата окончания не может быть раньше даты начала")
	}
	if in.DisplayOrder < 0 {
		return nil, apperror.Validation("displayOrder не может быть отрицательным")
	}
	return &in, nil
}
