package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// AboutSkillRepository хранит выбор навыков для раздела «Обо мне».
// Инвариант: display_order выбранных навыков всегда образует 1..n.
type AboutSkillRepository struct {
	db *sqlx.DB
}

func NewAboutSkillRepository(db *sqlx.DB) *AboutSkillRepository {
	return &AboutSkillRepository{db: db}
}

// ListSelected возвращает выбранные навыки в порядке отображения.
func (r *AboutSkillRepository) ListSelected(ctx context.Context) ([]models.SelectedSkill, error) {
	query := `
		SELECT a.id AS about_skill_id, a.skill_id, a.display_order,
		       s.name, s.level, s.icon, COALESCE(c.slug, '') AS category
		FROM about_skills a
		JOIN skills s ON s.id = a.skill_id
		LEFT JOIN skill_categories c ON c.id = s.category_id
		ORDER BY a.display_order, a.id
	`
	selected := []models.SelectedSkill{}
	if err := r.db.SelectContext(ctx, &selected, query); err != nil {
		return nil, fmt.Errorf("about skill repository: list %w", err)
	}
	return selected, nil
}

// Add добавляет навык в конец выбора (позиция = максимум + 1).
// Повторный выбор даёт common.ErrAlreadyExists, несуществующий навык — common.ErrReferenced.
func (r *AboutSkillRepository) Add(ctx context.Context, skillID int64) (*models.AboutSkill, error) {
	var row models.AboutSkill
	query := `
		INSERT INTO about_skills (skill_id, display_order)
		SELECT $1, COALESCE(MAX(display_order), 0) + 1 FROM about_skills
		RETURNING id, skill_id, display_order
	`
	if err := r.db.QueryRowxContext(ctx, query, skillID).StructScan(&row); err != nil {
		return nil, common.TranslatePQ(fmt.Errorf("about skill repository: add %w", err))
	}
	return &row, nil
}

// Remove удаляет навык из выбора и сжимает порядок в одной транзакции.
// Возвращает false, если навык не был выбран.
func (r *AboutSkillRepository) Remove(ctx context.Context, skillID int64) (bool, error) {
	removed := false
	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM about_skills WHERE skill_id = $1`, skillID)
		if err != nil {
			return fmt.Errorf("about skill repository: remove %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return nil
		}
		removed = true
		return compactAboutSkills(ctx, tx)
	})
	return removed, err
}

// ReplaceOrder записывает весь порядок выбора одной транзакцией.
// Уникальность display_order проверяется при коммите (DEFERRABLE).
func (r *AboutSkillRepository) ReplaceOrder(ctx context.Context, placements []common.Placement) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := common.UpdateDisplayOrderBy(ctx, tx, "about_skills", "skill_id", placements); err != nil {
			return fmt.Errorf("about skill repository: replace order %w", err)
		}
		return nil
	})
}

// compactAboutSkills перенумеровывает выбор в 1..n, сохраняя относительный порядок.
func compactAboutSkills(ctx context.Context, e sqlx.ExecerContext) error {
	_, err := e.ExecContext(ctx, `
		UPDATE about_skills AS a SET display_order = r.rn
		FROM (
			SELECT id, ROW_NUMBER() OVER (ORDER BY display_order, id) AS rn
			FROM about_skills
		) AS r
		WHERE a.id = r.id AND a.display_order <> r.rn
	`)
	if err != nil {
		return fmt.Errorf("about skill repository: compact %w", err)
	}
	return nil
}
