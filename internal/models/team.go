package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a slice of strings as a JSON array in a TEXT column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("scan StringList: unsupported type %T", src)
	}
}

// Team is a scored submission from the team-building form. Created once per
// successful submit; never updated or deleted afterwards.
type Team struct {
	ID       uint   `gorm:"primaryKey"`
	PublicID string `gorm:"size:36;uniqueIndex;not null"` // UUID shown to clients
	UserID   uint   `gorm:"not null;index:idx_teams_user_created,priority:1"`

	TeamName     string     `gorm:"size:128;not null"`
	Bids         StringList `gorm:"type:TEXT"` // selected algorithms, tiers 1-4
	SelectedData StringList `gorm:"type:TEXT"` // selected datasets, up to 5
	Credits      int
	Score        float64

	CreatedAt time.Time `gorm:"index:idx_teams_user_created,priority:2,sort:desc"`

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
