package models

import "time"

// Session binds an opaque bearer token to a user. The token itself is the
// primary key; it never leaves the server except inside the httpOnly cookie.
// Rows are created at login, flagged Revoked at logout and deleted lazily
// once expired. No field is updated after creation except Revoked.
type Session struct {
	ID        string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	Revoked   bool      `gorm:"not null"`
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
