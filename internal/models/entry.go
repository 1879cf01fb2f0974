package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Entry is a single signed income or expense on one account.
type Entry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_entries_account" json:"account_id"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_entries_category" json:"category_id"`
	SubcategoryID *uuid.UUID      `gorm:"type:uuid;index:idx_entries_subcategory" json:"subcategory_id,omitempty"`
	Title         string          `gorm:"type:text;not null;default:''" json:"title"`
	Amount        decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"amount"`
	CreatedAt     time.Time       `gorm:"not null;index:idx_entries_created_at" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Entry
func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

// Validate validates the entry fields
func (e *Entry) Validate() error {
	if e.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}
	if e.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}
	return CheckAmount(e.Amount)
}

func (e *Entry) RecordID() uuid.UUID {
	return e.ID
}

// Effects moves the account balance by the signed amount.
func (e *Entry) Effects() []BalanceDelta {
	return []BalanceDelta{{AccountID: e.AccountID, Amount: e.Amount}}
}

func (Entry) TableName() string {
	return "entries"
}
