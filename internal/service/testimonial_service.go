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

// TestimonialRepository описывает хранилище отзывов.
type TestimonialRepository interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	GetByID(ctx context.Context, id int64) (*models.Testimonial, error)
	Create(ctx context.Context, t *models.Testimonial) error
	Update(ctx context.Context, t *models.Testimonial) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, placements []common.Placement) error
}

type TestimonialService struct {
	repo TestimonialRepository
}

func NewTestimonialService(repo TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

func (s *TestimonialService) List(ctx context.Context) ([]models.Testimonial, error) {
	items, err := s.repo.List(ctx)
	return items, storageError(err)
}

func (s *TestimonialService) Get(ctx context.Context, id int64) (*models.Testimonial, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return item, nil
}

func (s *TestimonialService) Create(ctx context.Context, in models.Testimonial) (*models.Testimonial, error) {
	item, err := normalizeTestimonial(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, storageError(err)
	}
	return item, nil
}

func (s *TestimonialService) Update(ctx context.Context, id int64, in models.Testimonial) (*models.Testimonial, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, storageError(err)
	}
	item, err := normalizeTestimonial(in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, storageError(err)
	}
	return item, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id int64) error {
	return storageError(s.repo.Delete(ctx, id))
}

func (s *TestimonialService) Reorder(ctx context.Context, placements []Placement) ([]models.Testimonial, error) {
	return reorderCollection[models.Testimonial](ctx, s.repo, placements, func(t models.Testimonial) ordering.Entry {
		return ordering.Entry{ItemID: t.ID, DisplayOrder: t.DisplayOrder}
	})
}

func normalizeTestimonial(in models.Testimonial) (*models.Testimonial, error) {
	in.Author = strings.TrimSpace(in.Author)
	in.Quote = strings.TrimSpace(in.Quote)
	if err := validation.ValidateRequired("автор", in.Author, validation.MaxNameLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateRequired("текст отзыва", in.Quote, validation.MaxLongTextLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateImageRef("аватар", in.Avatar); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if in.Rating == 0 {
		in.Rating = validation.MaxRating
	}
	if err := validation.ValidateRating(in.Rating); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if in.DisplayOrder < 0 {
		return nil, apperror.Validation("displayOrder не может быть отрицательным")
	}
	return &in, nil
}
