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

const categoryColumns = `id, name, slug, description, icon, display_order, is_active, created_at, updated_at`

// CategoryRepository работает с таблицей skill_categories.
type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List возвращает категории; activeOnly оставляет только активные.
func (r *CategoryRepository) List(ctx context.Context, activeOnly bool) ([]models.SkillCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM skill_categories`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, name`

	categories := []models.SkillCategory{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("category repository: list %w", err)
	}
	return categories, nil
}

// GetByID возвращает категорию по ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.SkillCategory, error) {
	return common.GetByID[models.SkillCategory](ctx, r.db,
		`SELECT `+categoryColumns+` FROM skill_categories WHERE id = $1`, id, apperror.ErrCategoryNotFound)
}

// GetBySlug возвращает категорию по slug.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.SkillCategory, error) {
	var category models.SkillCategory
	err := r.db.GetContext(ctx, &category, `SELECT `+categoryColumns+` FROM skill_categories WHERE slug = $1`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("category repository: get by slug %w", err)
	}
	return &category, nil
}

// SlugTaken проверяет, занят ли slug другой категорией (excludeID = 0 — без исключений).
func (r *CategoryRepository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM skill_categories WHERE slug = $1 AND id <> $2)`, slug, excludeID)
	if err != nil {
		return false, fmt.Errorf("category repository: slug taken %w", err)
	}
	return exists, nil
}

// Create сохраняет категорию. display_order = 0 ставит её в конец списка.
func (r *CategoryRepository) Create(ctx context.Context, c *models.SkillCategory) error {
	query := `
		INSERT INTO skill_categories (name, slug, description, icon, display_order, is_active)
		VALUES ($1, $2, $3, $4,
			COALESCE(NULLIF($5, 0), (SELECT COALESCE(MAX(display_order), 0) + 1 FROM skill_categories)),
			$6)
		RETURNING id, display_order, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, c.Name, c.Slug, c.Description, c.Icon, c.DisplayOrder, c.IsActive).
		Scan(&c.ID, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return common.TranslatePQ(fmt.Errorf("category repository: create %w", err))
	}
	return nil
}

// Update полностью заменяет поля категории.
func (r *CategoryRepository) Update(ctx context.Context, c *models.SkillCategory) error {
	query := `
		UPDATE skill_categories
		SET name = $2, slug = $3, description = $4, icon = $5, display_order = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, c.ID, c.Name, c.Slug, c.Description, c.Icon, c.DisplayOrder, c.IsActive).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrCategoryNotFound
		}
		return common.TranslatePQ(fmt.Errorf("category repository: update %w", err))
	}
	return nil
}

// CountSkills возвращает количество навыков, ссылающихся на категорию.
func (r *CategoryRepository) CountSkills(ctx context.Context, categoryID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM skills WHERE category_id = $1`, categoryID); err != nil {
		return 0, fmt.Errorf("category repository: count skills %w", err)
	}
	return count, nil
}

// Delete удаляет категорию. Ссылки из skills дают common.ErrReferenced.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return common.DeleteByID(ctx, r.db, "skill_categories", id, apperror.ErrCategoryNotFound)
}
