package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manoranjan-programmer/fiesta-ignitron/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Profile is a verified external-identity assertion. The OAuth callback
// exchanges the code and fetches userinfo before building one of these, so
// the engine trusts the fields as-is.
type Profile struct {
	GoogleID    string
	Email       string
	DisplayName string
	AvatarURL   string
}

// Service resolves credentials and external assertions to exactly one
// identity row. It holds no in-process state: with multiple instances
// behind a load balancer, the store's unique indexes on email and google_id
// are the only consistency mechanism, so create races are resolved by a
// single retry lookup instead of locks.
type Service struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewService(db *gorm.DB, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{DB: db, BcryptCost: bcryptCost}
}

// ReconcileExternal maps a Google profile to one identity. Lookup order
// matters: google_id first (stable across email changes), then email (a
// person owns one inbox, so a prior local signup gets the Google id linked
// onto it rather than a duplicate row), then create.
func (s *Service) ReconcileExternal(ctx context.Context, p Profile) (*models.User, error) {
	user, err := s.reconcileExternalOnce(ctx, p)
	if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
		return user, err
	}

	// Create lost a race: another request inserted the same google_id or
	// email between our lookups and the insert. The row exists now, so one
	// more pass through the lookups must find it.
	user, err = s.reconcileExternalOnce(ctx, p)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrConflict
	}
	return nil, err
}

func (s *Service) reconcileExternalOnce(ctx context.Context, p Profile) (*models.User, error) {
	db := s.DB.WithContext(ctx)

	var user models.User
	err := db.Where("google_id = ?", p.GoogleID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: lookup by google id: %v", ErrStoreUnavailable, err)
	}

	err = db.Where("LOWER(email) = LOWER(?)", p.Email).First(&user).Error
	if err == nil {
		// Existing local account with the same email: link instead of
		// creating a second identity.
		user.GoogleID = &p.GoogleID
		if p.AvatarURL != "" && user.AvatarURL == "" {
			user.AvatarURL = p.AvatarURL
		}
		if saveErr := db.Save(&user).Error; saveErr != nil {
			if errors.Is(saveErr, gorm.ErrDuplicatedKey) {
				return nil, saveErr
			}
			return nil, fmt.Errorf("%w: link google id: %v", ErrStoreUnavailable, saveErr)
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: lookup by email: %v", ErrStoreUnavailable, err)
	}

	user = models.User{
		GoogleID:    &p.GoogleID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: create user: %v", ErrStoreUnavailable, err)
	}
	return &user, nil
}

// ReconcileLocal verifies an email/password pair. Every failure mode returns
// ErrInvalidCredentials so the response does not reveal whether the email is
// registered.
func (s *Service) ReconcileLocal(ctx context.Context, email, password string) (*models.User, error) {
	db := s.DB.WithContext(ctx)

	var user models.User
	err := db.Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%w: lookup by email: %v", ErrStoreUnavailable, err)
	}

	if user.PasswordHash == nil {
		// Google-only account; password login is not enabled for it.
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// CreateLocal registers a password account. The precheck gives the common
// case a clean error; the duplicate-key branch on create catches the
// concurrent-signup race the precheck cannot.
func (s *Service) CreateLocal(ctx context.Context, displayName, email, password string) (*models.User, error) {
	db := s.DB.WithContext(ctx)
	email = strings.TrimSpace(email)

	var count int64
	if err := db.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("%w: check email: %v", ErrStoreUnavailable, err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	hashStr := string(hash)
	user := models.User{
		Email:        email,
		PasswordHash: &hashStr,
		DisplayName:  strings.TrimSpace(displayName),
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: create user: %v", ErrStoreUnavailable, err)
	}
	return &user, nil
}
