package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// SectionRepository хранит singleton-разделы сайта в виде JSONB.
type SectionRepository struct {
	db *sqlx.DB
}

func NewSectionRepository(db *sqlx.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// Get возвращает содержимое раздела. found = false, если раздел ещё не сохранялся.
func (r *SectionRepository) Get(ctx context.Context, key models.SectionKey) (json.RawMessage, bool, error) {
	var content []byte
	err := r.db.GetContext(ctx, &content, `SELECT content FROM site_sections WHERE key = $1`, string(key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("section repository: get %s %w", key, err)
	}
	return json.RawMessage(content), true, nil
}

// Upsert полностью заменяет содержимое раздела.
func (r *SectionRepository) Upsert(ctx context.Context, key models.SectionKey, content json.RawMessage) error {
	query := `
		INSERT INTO site_sections (key, content, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, string(key), string(content)); err != nil {
		return fmt.Errorf("section repository: upsert %s %w", key, err)
	}
	return nil
}
