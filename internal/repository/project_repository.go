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

const projectColumns = `id, title, slug, summary, description, image, tags, live_url, repo_url, featured, display_order, created_at, updated_at`

// ProjectRepository работает с таблицей projects.
type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List возвращает проекты в порядке отображения.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := r.db.SelectContext(ctx, &projects, `SELECT `+projectColumns+` FROM projects ORDER BY display_order, id`); err != nil {
		return nil, fmt.Errorf("project repository: list %w", err)
	}
	return projects, nil
}

// GetByID возвращает проект по ID.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return common.GetByID[models.Project](ctx, r.db, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id, apperror.ErrProjectNotFound)
}

// GetBySlug возвращает проект по slug.
func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var p models.Project
	if err := r.db.GetContext(ctx, &p, `SELECT `+projectColumns+` FROM projects WHERE slug = $1`, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrProjectNotFound
		}
		return nil, fmt.Errorf("project repository: get by slug %w", err)
	}
	return &p, nil
}

// SlugTaken проверяет, занят ли slug другим проектом.
func (r *ProjectRepository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM projects WHERE slug = $1 AND id <> $2)`, slug, excludeID); err != nil {
		return false, fmt.Errorf("project repository: slug taken %w", err)
	}
	return exists, nil
}

// Create сохраняет проект. display_order = 0 ставит его в конец.
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	query := `
		INSERT INTO projects (title, slug, summary, description, image, tags, live_url, repo_url, featured, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			COALESCE(NULLIF($10, 0), (SELECT COALESCE(MAX(display_order), 0) + 1 FROM projects)))
		RETURNING id, display_order, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		p.Title, p.Slug, p.Summary, p.Description, p.Image, p.Tags, p.LiveURL, p.RepoURL, p.Featured, p.DisplayOrder,
	).Scan(&p.ID, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return common.TranslatePQ(fmt.Errorf("project repository: create %w", err))
	}
	return nil
}

// Update полностью заменяет поля проекта.
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	query := `
		UPDATE projects
		SET title = $2, slug = $3, summary = $4, description = $5, image = $6, tags = $7,
		    live_url = $8, repo_url = $9, featured = $10, display_order = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		p.ID, p.Title, p.Slug, p.Summary, p.Description, p.Image, p.Tags, p.LiveURL, p.RepoURL, p.Featured, p.DisplayOrder,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrProjectNotFound
		}
		return common.TranslatePQ(fmt.Errorf("project repository: update %w", err))
	}
	return nil
}

// Delete удаляет проект.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return common.DeleteByID(ctx, r.db, "projects", id, apperror.ErrProjectNotFound)
}

// Reorder переписывает порядок проектов одной транзакцией.
func (r *ProjectRepository) Reorder(ctx context.Context, placements []common.Placement) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		return common.UpdateDisplayOrder(ctx, tx, "projects", placements)
	})
}
