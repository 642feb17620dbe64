package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// AuthRepository описывает зависимости AuthService от слоя хранилища.
type AuthRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id int64) (*models.AdminUser, error)
	UpdateLastLoginAt(ctx context.Context, id int64) error
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, refreshToken string) (*models.Session, error)
	DeleteSession(ctx context.Context, refreshToken string) error
}

// AuthService отвечает за вход администратора и его сессии.
type AuthService struct {
	repo         AuthRepository
	tokenManager *TokenManager
}

// LoginInput содержит данные для входа.
type LoginInput struct {
	Email    string
	Password string
}

// SessionMeta — данные клиента, сохраняемые в сессии.
type SessionMeta struct {
	UserAgent string
	IP        string
}

// AuthResult возвращает итог авторизации.
type AuthResult struct {
	Admin     *models.AdminUser `json:"admin"`
	TokenPair *TokenPair        `json:"tokens"`
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(repo AuthRepository, tokenManager *TokenManager) *AuthService {
	return &AuthService{
		repo:         repo,
		tokenManager: tokenManager,
	}
}

// Login проверяет учётные данные и возвращает токены.
func (s *AuthService) Login(ctx context.Context, in LoginInput, meta SessionMeta) (*AuthResult, error) {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if in.Password == "" {
		return nil, apperror.Validation("пароль обязателен")
	}

	admin, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, storageError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLoginAt(ctx, admin.ID); err != nil {
		// не прерываем вход
		logger.Log.WithFields(logrus.Fields{
			"admin_id": admin.ID,
			"error":    err.Error(),
		}).Warn("auth service: не удалось обновить last_login_at")
	}

	tokenPair, err := s.issue(ctx, admin, meta)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Admin: admin, TokenPair: tokenPair}, nil
}

// Refresh выпускает новую пару токенов и закрывает старую сессию.
func (s *AuthService) Refresh(ctx context.Context, oldToken string, meta SessionMeta) (*TokenPair, error) {
	claims, err := s.tokenManager.ParseRefresh(oldToken)
	if err != nil {
		return nil, apperror.ErrSessionExpired
	}
	adminID, err := parseSubject(claims.Subject)
	if err != nil {
		return nil, apperror.ErrSessionExpired
	}

	session, err := s.repo.GetSession(ctx, oldToken)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, apperror.ErrSessionExpired
		}
		return nil, storageError(err)
	}
	if session.AdminID != adminID {
		return nil, apperror.ErrSessionExpired
	}

	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, apperror.ErrSessionExpired
		}
		return nil, storageError(err)
	}

	if err := s.repo.DeleteSession(ctx, oldToken); err != nil {
		return nil, storageError(err)
	}

	return s.issue(ctx, admin, meta)
}

// Logout удаляет сессию. Неизвестный токен не ошибка.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return storageError(s.repo.DeleteSession(ctx, refreshToken))
}

// Me возвращает текущего администратора.
func (s *AuthService) Me(ctx context.Context, adminID int64) (*models.AdminUser, error) {
	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, storageError(err)
	}
	return admin, nil
}

// Authenticate проверяет access токен.
func (s *AuthService) Authenticate(accessToken string) (int64, error) {
	adminID, err := s.tokenManager.ParseAccess(accessToken)
	if err != nil {
		return 0, apperror.ErrUnauthorized
	}
	return adminID, nil
}

// CreateAdmin создаёт учётную запись администратора или, при resetPassword, меняет пароль существующей.
func (s *AuthService) CreateAdmin(ctx context.Context, email, name, password string, resetPassword bool) (*models.AdminUser, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth service: не удалось захешировать пароль: %w", err)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil && resetPassword:
		if err := s.repo.UpdatePassword(ctx, existing.ID, string(passHash)); err != nil {
			return nil, storageError(err)
		}
		return existing, nil
	case err == nil:
		return nil, apperror.Conflict("администратор %s уже существует", email)
	case !errors.Is(err, repository.ErrAdminNotFound):
		return nil, storageError(err)
	}

	admin := &models.AdminUser{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(passHash),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, apperror.Conflict("администратор %s уже существует", email)
		}
		return nil, storageError(err)
	}
	return admin, nil
}

func (s *AuthService) issue(ctx context.Context, admin *models.AdminUser, meta SessionMeta) (*TokenPair, error) {
	tokenPair, _, refreshExp, err := s.tokenManager.GeneratePair(admin)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	session := &models.Session{
		ID:           uuid.New(),
		AdminID:      admin.ID,
		RefreshToken: tokenPair.RefreshToken,
		UserAgent:    meta.UserAgent,
		IP:           meta.IP,
		ExpiresAt:    refreshExp,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, storageError(err)
	}
	return tokenPair, nil
}
