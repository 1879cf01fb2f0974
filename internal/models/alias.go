package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxAliasLength = 100

var (
	ErrAliasRequired    = errors.New("alias is required")
	ErrAliasTooLong     = errors.New("alias must be at most 100 characters")
	ErrAliasSingleToken = errors.New("alias must be a single word")
)

// Alias maps a short token typed by the user to the title of an account,
// category or subcategory. Tokens are stored lowercased and are unique per
// user, so a token always resolves to a single title.
type Alias struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_aliases_user_alias" json:"user_id"`
	Alias     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_aliases_user_alias" json:"alias"`
	Target    string    `gorm:"type:varchar(255);not null" json:"target"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (a *Alias) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.Alias = NormalizeAlias(a.Alias)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return a.Validate()
}

func (a *Alias) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if a.Alias == "" {
		return ErrAliasRequired
	}
	if len(a.Alias) > MaxAliasLength {
		return ErrAliasTooLong
	}
	if strings.ContainsAny(a.Alias, " \t\n") {
		return ErrAliasSingleToken
	}
	return ValidateTitle(a.Target)
}

// NormalizeAlias lowercases a token for storage and lookup.
func NormalizeAlias(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

func (Alias) TableName() string {
	return "aliases"
}
