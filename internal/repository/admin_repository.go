package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// ErrAdminNotFound возвращается, когда учётная запись администратора не найдена.
var ErrAdminNotFound = errors.New("admin not found")

// ErrSessionNotFound возвращается, когда refresh-сессия не найдена или истекла.
var ErrSessionNotFound = errors.New("session not found")

// AdminRepository отвечает за таблицы admin_users и admin_sessions.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository создаёт экземпляр репозитория.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create создаёт администратора.
func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	if err := r.db.QueryRowxContext(
		ctx, query,
		admin.Email, admin.Name, admin.PasswordHash,
	).Scan(&admin.ID, &admin.CreatedAt); err != nil {
		return common.TranslatePQ(fmt.Errorf("admin repository: create %w", err))
	}

	return nil
}

// UpdatePassword меняет хеш пароля существующего администратора.
func (r *AdminRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE admin_users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("admin repository: update password %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// GetByEmail возвращает администратора по email.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	query := `
		SELECT id, email, name, password_hash, created_at, last_login_at
		FROM admin_users
		WHERE email = $1
	`
	if err := r.db.GetContext(ctx, &admin, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("admin repository: get by email %w", err)
	}

	return &admin, nil
}

// GetByID возвращает администратора по идентификатору.
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	return common.GetByID[models.AdminUser](ctx, r.db, `
		SELECT id, email, name, password_hash, created_at, last_login_at
		FROM admin_users
		WHERE id = $1
	`, id, ErrAdminNotFound)
}

// UpdateLastLoginAt фиксирует время последнего входа.
func (r *AdminRepository) UpdateLastLoginAt(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE admin_users SET last_login_at = NOW() WHERE id = $1`, id); err != nil {
		return fmt.Errorf("admin repository: update last login %w", err)
	}
	return nil
}

// CreateSession сохраняет refresh-сессию.
func (r *AdminRepository) CreateSession(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO admin_sessions (id, admin_id, refresh_token, user_agent, ip, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	if err := r.db.QueryRowxContext(
		ctx, query,
		session.ID, session.AdminID, session.RefreshToken, session.UserAgent, session.IP, session.ExpiresAt,
	).Scan(&session.CreatedAt); err != nil {
		return fmt.Errorf("admin repository: create session %w", err)
	}
	return nil
}

// GetSession возвращает действующую сессию по refresh-токену.
func (r *AdminRepository) GetSession(ctx context.Context, refreshToken string) (*models.Session, error) {
	var session models.Session
	query := `
		SELECT id, admin_id, refresh_token, user_agent, ip, expires_at, created_at
		FROM admin_sessions
		WHERE refresh_token = $1 AND expires_at > NOW()
	`
	if err := r.db.GetContext(ctx, &session, query, refreshToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("admin repository: get session %w", err)
	}
	return &session, nil
}

// DeleteSession удаляет сессию по refresh-токену.
func (r *AdminRepository) DeleteSession(ctx context.Context, refreshToken string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE refresh_token = $1`, refreshToken); err != nil {
		return fmt.Errorf("admin repository: delete session %w", err)
	}
	return nil
}

// DeleteExpiredSessions чистит истёкшие сессии и возвращает их количество.
func (r *AdminRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("admin repository: delete expired sessions %w", err)
	}
	return res.RowsAffected()
}
