// Package session issues and resolves the opaque bearer tokens that back the
// login cookie. A token is 24 bytes from crypto/rand, URL-safe base64 without
// padding; the database row keyed by it is the only record of the binding.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/manoranjan-programmer/fiesta-ignitron/internal/models"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/util"

	"gorm.io/gorm"
)

// ErrUnauthenticated is returned for any token that does not resolve:
// unknown, revoked or expired. Callers cannot tell which.
var ErrUnauthenticated = errors.New("unauthenticated")

// DefaultTTL matches the original deployment: sessions live 24 hours from
// creation, with no sliding renewal.
const DefaultTTL = 24 * time.Hour

// Manager owns the sessions table. Like the reconciliation engine it keeps
// no in-process state, so any instance can resolve a token issued by another.
type Manager struct {
	DB  *gorm.DB
	TTL time.Duration
}

func NewManager(db *gorm.DB, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{DB: db, TTL: ttl}
}

// Create issues a fresh token bound to userID and returns it. The binding
// expires TTL after creation, full stop.
func (m *Manager) Create(ctx context.Context, userID uint) (string, error) {
	token, err := util.NewToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	sess := models.Session{
		ID:        token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(m.TTL),
	}
	if err := m.DB.WithContext(ctx).Create(&sess).Error; err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Resolve returns the user bound to token. Expired rows found here are
// deleted on the spot; there is no background sweeper.
func (m *Manager) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	db := m.DB.WithContext(ctx)

	var sess models.Session
	err := db.Where("id = ?", token).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}

	if !time.Now().Before(sess.ExpiresAt) {
		_ = db.Delete(&models.Session{}, "id = ?", token).Error
		return nil, ErrUnauthenticated
	}
	if sess.Revoked {
		return nil, ErrUnauthenticated
	}

	var user models.User
	err = db.First(&user, sess.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session user: %w", err)
	}
	return &user, nil
}

// Revoke marks the binding dead. Revoking an unknown or already-revoked
// token is not an error; logout must always succeed from the client's view.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := m.DB.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", token).
		Update("revoked", true).Error
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
