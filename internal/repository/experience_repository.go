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

const experienceColumns = `id, company, role, location, start_date, end_date, is_current, description, display_order, created_at, updated_at`

// ExperienceRepository работает с таблицей experiences.
type ExperienceRepository struct {
	db *sqlx.DB
}

func NewExperienceRepository(db *sqlx.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

func (r *ExperienceRepository) List(ctx context.Context) ([]models.Experience, error) {
	items := []models.Experience{}
	if err := r.db.SelectContext(ctx, &items, `SELECT `+experienceColumns+` FROM experiences ORDER BY display_order, start_date DESC`); err != nil {
		return nil, fmt.Errorf("experience repository: list %w", err)
	}
	return items, nil
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id int64) (*models.Experience, error) {
	return common.GetByID[models.Experience](ctx, r.db, `SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id, apperror.ErrExperienceNotFound)
}

func (r *ExperienceRepository) Create(ctx context.Context, e *models.Experience) error {
	query := `
		INSERT INTO experiences (company, role, location, start_date, end_date, is_current, description, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			COALESCE(NULLIF($8, 0), (SELECT COALESCE(MAX(display_order), 0) + 1 FROM experiences)))
		RETURNING id, display_order, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		e.Company, e.Role, e.Location, e.StartDate, e.EndDate, e.IsCurrent, e.Description, e.DisplayOrder,
	).Scan(&e.ID, &e.DisplayOrder, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("experience repository: create %w", err)
	}
	return nil
}

func (r *ExperienceRepository) Update(ctx context.Context, e *models.Experience) error {
	query := `
		UPDATE experiences
		SET company = $2, role = $3, location = $4, start_date = $5, end_date = $6,
		    is_current = $7, description = $8, display_order = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		e.ID, e.Company, e.Role, e.Location, e.StartDate, e.EndDate, e.IsCurrent, e.Description, e.DisplayOrder,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrExperienceNotFound
		}
		return fmt.Errorf("experience repository: update %w", err)
	}
	return nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id int64) error {
	return common.DeleteByID(ctx, r.db, "experiences", id, apperror.ErrExperienceNotFound)
}

func (r *ExperienceRepository) Reorder(ctx context.Context, placements []common.Placement) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		return common.UpdateDisplayOrder(ctx, tx, "experiences", placements)
	})
}
