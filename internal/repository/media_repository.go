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

// MediaRepository работает с таблицей media_files.
type MediaRepository struct {
	db *sqlx.DB
}

// NewMediaRepository создаёт экземпляр.
func NewMediaRepository(db *sqlx.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Create сохраняет запись о файле.
func (r *MediaRepository) Create(ctx context.Context, media *models.MediaFile) error {
	query := `
		INSERT INTO media_files (file_name, file_path, mime_type, file_size, alt_text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if err := r.db.QueryRowxContext(
		ctx,
		query,
		media.FileName,
		media.FilePath,
		media.MimeType,
		media.FileSize,
		media.AltText,
	).Scan(&media.ID, &media.CreatedAt); err != nil {
		return common.TranslatePQ(fmt.Errorf("media repository: create %w", err))
	}

	return nil
}

// GetByID возвращает запись о файле.
func (r *MediaRepository) GetByID(ctx context.Context, id int64) (*models.MediaFile, error) {
	return common.GetByID[models.MediaFile](ctx, r.db, `SELECT * FROM media_files WHERE id = $1`, id, apperror.ErrMediaNotFound)
}

// List возвращает файлы медиатеки, новые первыми.
func (r *MediaRepository) List(ctx context.Context) ([]models.MediaFile, error) {
	files := []models.MediaFile{}
	if err := r.db.SelectContext(ctx, &files, `SELECT * FROM media_files ORDER BY created_at DESC, id DESC`); err != nil {
		return nil, fmt.Errorf("media repository: list %w", err)
	}
	return files, nil
}

// UpdateAltText меняет alt-текст файла.
func (r *MediaRepository) UpdateAltText(ctx context.Context, id int64, altText string) (*models.MediaFile, error) {
	var media models.MediaFile
	err := r.db.GetContext(ctx, &media, `UPDATE media_files SET alt_text = $2 WHERE id = $1 RETURNING *`, id, altText)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrMediaNotFound
		}
		return nil, fmt.Errorf("media repository: update alt text %w", err)
	}
	return &media, nil
}

// Delete удаляет запись о файле.
func (r *MediaRepository) Delete(ctx context.Context, id int64) error {
	return common.DeleteByID(ctx, r.db, "media_files", id, apperror.ErrMediaNotFound)
}
