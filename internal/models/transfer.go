package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transfer moves money between two accounts. AmountFrom and AmountTo differ
// when the accounts hold different currencies.
type Transfer struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AmountFrom    decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"amount_from"`
	AmountTo      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"amount_to"`
	AccountFromID uuid.UUID       `gorm:"type:uuid;not null;index:idx_transfers_account_from" json:"account_from_id"`
	AccountToID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_transfers_account_to" json:"account_to_id"`
	CreatedAt     time.Time       `gorm:"not null;index:idx_transfers_created_at" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transfer
func (t *Transfer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transfer fields
func (t *Transfer) Validate() error {
	if t.AccountFromID == uuid.Nil || t.AccountToID == uuid.Nil {
		return errors.New("both accounts are required")
	}
	if err := CheckAmount(t.AmountFrom); err != nil {
		return err
	}
	return CheckAmount(t.AmountTo)
}

func (t *Transfer) RecordID() uuid.UUID {
	return t.ID
}

// Effects debits the source by AmountFrom and credits the destination by
// AmountTo.
func (t *Transfer) Effects() []BalanceDelta {
	return []BalanceDelta{
		{AccountID: t.AccountFromID, Amount: t.AmountFrom.Neg()},
		{AccountID: t.AccountToID, Amount: t.AmountTo},
	}
}

func (Transfer) TableName() string {
	return "transfers"
}
