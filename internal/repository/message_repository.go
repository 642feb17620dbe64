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

// MessageFilter задаёт выборку сообщений для админки.
type MessageFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// MessageRepository работает с таблицей messages.
type MessageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create сохраняет сообщение из формы обратной связи.
func (r *MessageRepository) Create(ctx context.Context, m *models.Message) error {
	query := `
		INSERT INTO messages (name, email, subject, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_read, created_at
	`
	if err := r.db.QueryRowxContext(ctx, query, m.Name, m.Email, m.Subject, m.Body).
		Scan(&m.ID, &m.IsRead, &m.CreatedAt); err != nil {
		return fmt.Errorf("message repository: create %w", err)
	}
	return nil
}

// GetByID возвращает сообщение по ID.
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	return common.GetByID[models.Message](ctx, r.db, `SELECT * FROM messages WHERE id = $1`, id, apperror.ErrMessageNotFound)
}

// List возвращает сообщения, новые первыми.
func (r *MessageRepository) List(ctx context.Context, filter MessageFilter) ([]models.Message, error) {
	query := `SELECT * FROM messages`
	if filter.UnreadOnly {
		query += ` WHERE is_read = FALSE`
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`

	messages := []models.Message{}
	if err := r.db.SelectContext(ctx, &messages, query, filter.Limit, filter.Offset); err != nil {
		return nil, fmt.Errorf("message repository: list %w", err)
	}
	return messages, nil
}

// CountUnread возвращает количество непрочитанных сообщений.
func (r *MessageRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM messages WHERE is_read = FALSE`); err != nil {
		return 0, fmt.Errorf("message repository: count unread %w", err)
	}
	return count, nil
}

// SetRead помечает сообщение прочитанным или непрочитанным.
func (r *MessageRepository) SetRead(ctx context.Context, id int64, read bool) (*models.Message, error) {
	var m models.Message
	err := r.db.GetContext(ctx, &m, `UPDATE messages SET is_read = $2 WHERE id = $1 RETURNING *`, id, read)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrMessageNotFound
		}
		return nil, fmt.Errorf("message repository: set read %w", err)
	}
	return &m, nil
}

// Delete удаляет сообщение.
func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	return common.DeleteByID(ctx, r.db, "messages", id, apperror.ErrMessageNotFound)
}
