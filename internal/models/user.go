package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser — учётная запись администратора сайта.
type AdminUser struct {
	ID           int64      `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	Name         string     `db:"name" json:"name"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
}

// Session — refresh-сессия администратора.
type Session struct {
	ID           uuid.UUID `db:"id" json:"id"`
	AdminID      int64     `db:"admin_id" json:"adminId"`
	RefreshToken string    `db:"refresh_token" json:"-"`
	UserAgent    string    `db:"user_agent" json:"userAgent"`
	IP           string    `db:"ip" json:"ip"`
	ExpiresAt    time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
