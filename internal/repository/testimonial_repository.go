package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

const testimonialColumns = `id, author, role, company, quote, avatar, rating, display_order, created_at, updated_at`

// TestimonialRepository работает с таблицей testimonials.
type TestimonialRepository struct {
	db *sqlx.DB
}

func NewTestimonialRepository(db *sqlx.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	items := []models.Testimonial{}
	if err := r.db.SelectContext(ctx, &items, `SELECT `+testimonialColumns+` FROM testimonials ORDER BY display_order, id`); err != nil {
		return nil, fmt.Errorf("testimonial repository: list %w", err)
	}
	return items, nil
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	return common.GetByID[models.Testimonial](ctx, r.db, `SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id, apperror.ErrTestimonialNotFound)
}

func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	query := `
		INSERT INTO testimonials (author, role, company, quote, avatar, rating, display_order)
		VALUES ($1, $2, $3, $4, $5, $6,
			COALESCE(NULLIF($7, 0), (SELECT COALESCE(MAX(display_order), 0) + 1 FROM testimonials)))
		RETURNING id, display_order, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		t.Author, t.Role, t.Company, t.Quote, t.Avatar, t.Rating, t.DisplayOrder,
	).Scan(&t.ID, &t.DisplayOrder, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("testimonial repository: create %w", err)
	}
	return nil
}

func (r *TestimonialRepository) Update(ctx context.Context, t *models.Testimonial) error {
	query := `
		UPDATE testimonials
		SET author = $2, role = $3, company = $4, quote = $5, avatar = $6, rating = $7,
		    display_order = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		t.ID, t.Author, t.Role, t.Company, t.Quote, t.Avatar, t.Rating, t.DisplayOrder,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrTestimonialNotFound
		}
		return fmt.Errorf("testimonial repository: update %w", err)
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	return common.DeleteByID(ctx, r.db, "testimonials", id, apperror.ErrTestimonialNotFound)
}

func (r *TestimonialRepository) Reorder(ctx context.Context, placements []common.Placement) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		return common.UpdateDisplayOrder(ctx, tx, "testimonials", placements)
	})
}
