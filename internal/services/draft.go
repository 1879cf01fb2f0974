package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DraftKind says whether a draft records money coming in or going out
type DraftKind string

const (
	DraftIncome  DraftKind = "income"
	DraftExpense DraftKind = "expense"
)

var (
	ErrDraftKind       = errors.New("draft kind must be income or expense")
	ErrDraftIncomplete = errors.New("draft requires an account and a category")
)

// EntryDraft accumulates the answers of the step-by-step "add" dialog. The
// caller owns it and passes it back on every step; nothing is kept between
// calls on the server side.
type EntryDraft struct {
	Kind          DraftKind       `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Title         string          `json:"title"`
	AccountID     uuid.UUID       `json:"account_id"`
	CategoryID    uuid.UUID       `json:"category_id"`
	SubcategoryID *uuid.UUID      `json:"subcategory_id,omitempty"`
}

func (d *EntryDraft) Validate() error {
	if d.Kind != DraftIncome && d.Kind != DraftExpense {
		return ErrDraftKind
	}
	if d.AccountID == uuid.Nil || d.CategoryID == uuid.Nil {
		return ErrDraftIncomplete
	}
	return nil
}

// SignedAmount is the entry amount. Expenses are negated.
func (d *EntryDraft) SignedAmount() decimal.Decimal {
	if d.Kind == DraftExpense {
		return d.Amount.Neg()
	}
	return d.Amount
}

// ParseDraftInput reads the amount step of the dialog: an amount line,
// optionally followed by a note on the next lines
func ParseDraftInput(text string) (decimal.Decimal, string, error) {
	amountLine, title, _ := strings.Cut(text, "\n")

	amount, err := ParseAmount(strings.TrimSpace(amountLine))
	if err != nil {
		return decimal.Zero, "", err
	}

	return amount, strings.TrimSpace(title), nil
}
