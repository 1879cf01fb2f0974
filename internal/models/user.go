package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a chat participant. ExternalID is the identifier issued by the chat
// platform; Username is optional and unique when present.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ExternalID int64     `gorm:"uniqueIndex;not null" json:"external_id"`
	Username   *string   `gorm:"type:varchar(255);uniqueIndex" json:"username,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	if u.Username != nil {
		trimmed := strings.TrimSpace(*u.Username)
		if trimmed == "" {
			u.Username = nil
		} else {
			u.Username = &trimmed
		}
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) Validate() error {
	if u.ExternalID == 0 {
		return errors.New("external ID is required")
	}
	if u.Username != nil && len(*u.Username) > 255 {
		return errors.New("username must be at most 255 characters")
	}
	return nil
}

// DisplayName returns the username or an empty string.
func (u *User) DisplayName() string {
	if u.Username == nil {
		return ""
	}
	return *u.Username
}

func (User) TableName() string {
	return "users"
}
