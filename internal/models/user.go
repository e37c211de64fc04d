package models

import "time"

// User is an identity record, the unit of authentication. An account is
// created either by local signup (PasswordHash set) or by the Google OAuth
// callback (GoogleID set); linking a Google login to an existing email sets
// both. Neither field is ever cleared, so every row keeps at least one
// usable login method.
type User struct {
	ID uint `gorm:"primaryKey"`

	// GoogleID is the OAuth subject identifier. Nullable so local-only
	// accounts exist; SQLite keeps NULLs distinct in the unique index,
	// which gives the sparse-unique behavior we need.
	GoogleID *string `gorm:"size:64;uniqueIndex"`

	// Email is unique case-insensitively but stored as the user typed it.
	Email string `gorm:"type:TEXT COLLATE NOCASE;uniqueIndex;not null"`

	// PasswordHash is a bcrypt hash; nil for Google-only accounts.
	PasswordHash *string `gorm:"size:255"`

	DisplayName string `gorm:"size:128"`
	AvatarURL   string `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
