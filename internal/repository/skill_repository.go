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

const skillSelect = `
	SELECT s.id, s.name, s.level, s.icon, s.category_id, COALESCE(c.slug, '') AS category,
	       s.display_order, s.created_at, s.updated_at
	FROM skills s
	LEFT JOIN skill_categories c ON c.id = s.category_id
`

// SkillRepository работает с таблицей skills.
type SkillRepository struct {
	db *sqlx.DB
}

func NewSkillRepository(db *sqlx.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// List возвращает все навыки в порядке отображения.
func (r *SkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	skills := []models.Skill{}
	if err := r.db.SelectContext(ctx, &skills, skillSelect+` ORDER BY s.display_order, s.name`); err != nil {
		return nil, fmt.Errorf("skill repository: list %w", err)
	}
	return skills, nil
}

// GetByID возвращает навык по ID.
func (r *SkillRepository) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	return common.GetByID[models.Skill](ctx, r.db, skillSelect+` WHERE s.id = $1`, id, apperror.ErrSkillNotFound)
}

// Create сохраняет навык. display_order = 0 ставит его в конец.
func (r *SkillRepository) Create(ctx context.Context, s *models.Skill) error {
	query := `
		INSERT INTO skills (name, level, icon, category_id, display_order)
		VALUES ($1, $2, $3, $4,
			COALESCE(NULLIF($5, 0), (SELECT COALESCE(MAX(display_order), 0) + 1 FROM skills)))
		RETURNING id, display_order, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, s.Name, s.Level, s.Icon, s.CategoryID, s.DisplayOrder).
		Scan(&s.ID, &s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return common.TranslatePQ(fmt.Errorf("skill repository: create %w", err))
	}
	return nil
}

// Update полностью заменяет поля навыка.
func (r *SkillRepository) Update(ctx context.Context, s *models.Skill) error {
	query := `
		UPDATE skills
		SET name = $2, level = $3, icon = $4, category_id = $5, display_order = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, s.ID, s.Name, s.Level, s.Icon, s.CategoryID, s.DisplayOrder).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrSkillNotFound
		}
		return common.TranslatePQ(fmt.Errorf("skill repository: update %w", err))
	}
	return nil
}

// Delete удаляет навык. Строка выбора в about_skills удаляется каскадно,
// оставшийся выбор сжимается в той же транзакции.
func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := common.DeleteByID(ctx, tx, "skills", id, apperror.ErrSkillNotFound); err != nil {
			return err
		}
		return compactAboutSkills(ctx, tx)
	})
}

// Reorder переписывает display_order у всех переданных навыков одной транзакцией.
func (r *SkillRepository) Reorder(ctx context.Context, placements []common.Placement) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		return common.UpdateDisplayOrder(ctx, tx, "skills", placements)
	})
}
