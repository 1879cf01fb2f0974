package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MaxTitleLength    = 255
	MaxCurrencyLength = 100
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title must be at most 255 characters")
	ErrCurrencyRequired = errors.New("currency is required")
	ErrCurrencyTooLong  = errors.New("currency must be at most 100 characters")
)

// Account is a named balance holder owned by one user.
type Account struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_accounts_user_title" json:"user_id"`
	Title     string          `gorm:"type:varchar(255);not null" json:"title"`
	TitleKey  string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_user_title" json:"-"`
	Currency  string          `gorm:"type:varchar(100);not null" json:"currency"`
	Balance   decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0" json:"balance"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	a.TitleKey = TitleKey(a.Title)
	a.Balance = RoundAmount(a.Balance)

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return nil
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if err := ValidateTitle(a.Title); err != nil {
		return err
	}
	if a.Currency == "" {
		return ErrCurrencyRequired
	}
	if len(a.Currency) > MaxCurrencyLength {
		return ErrCurrencyTooLong
	}
	return CheckAmount(a.Balance)
}

// TitleKey is the case-folded form titles are matched and kept unique by
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// ValidateTitle checks the length bounds shared by accounts, categories and
// subcategories.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func (Account) TableName() string {
	return "accounts"
}
