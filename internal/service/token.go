package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

const (
	tokenIssuer     = "portfolio-backend"
	accessAudience  = "admin-access"
	refreshAudience = "admin-refresh"
)

// TokenPair хранит пару access/refresh токенов.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// tokenKind описывает один вид токена: свой ключ, срок и audience.
type tokenKind struct {
	secret   []byte
	ttl      time.Duration
	audience string
}

// TokenManager выпускает и проверяет JWT администратора (HS256).
type TokenManager struct {
	access  tokenKind
	refresh tokenKind
	now     func() time.Time
}

func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		access:  tokenKind{secret: []byte(accessSecret), ttl: accessTTL, audience: accessAudience},
		refresh: tokenKind{secret: []byte(refreshSecret), ttl: refreshTTL, audience: refreshAudience},
		now:     time.Now,
	}
}

// GeneratePair выпускает новую пару токенов и возвращает сроки их действия.
func (m *TokenManager) GeneratePair(admin *models.AdminUser) (*TokenPair, time.Time, time.Time, error) {
	issued := m.now()

	access, accessExp, err := m.sign(m.access, admin.ID, "", issued)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	// у refresh уникальный jti, чтобы два входа в одну секунду не дали одинаковый токен
	refresh, refreshExp, err := m.sign(m.refresh, admin.ID, uuid.NewString(), issued)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(m.access.ttl.Seconds()),
	}, accessExp, refreshExp, nil
}

// ParseRefresh проверяет refresh токен и возвращает клеймы.
func (m *TokenManager) ParseRefresh(token string) (*jwt.RegisteredClaims, error) {
	return m.parse(m.refresh, token)
}

// ParseAccess извлекает id администратора из access токена.
func (m *TokenManager) ParseAccess(token string) (int64, error) {
	claims, err := m.parse(m.access, token)
	if err != nil {
		return 0, err
	}
	return parseSubject(claims.Subject)
}

func (m *TokenManager) sign(kind tokenKind, adminID int64, jti string, issued time.Time) (string, time.Time, error) {
	exp := issued.Add(kind.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   strconv.FormatInt(adminID, 10),
		Audience:  jwt.ClaimStrings{kind.audience},
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(kind.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (m *TokenManager) parse(kind tokenKind, token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return kind.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(kind.audience),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func parseSubject(sub string) (int64, error) {
	adminID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || adminID <= 0 {
		return 0, jwt.ErrTokenInvalidSubject
	}
	return adminID, nil
}
