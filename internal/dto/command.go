package dto

import (
	"ledger-bot/internal/models"
)

// CommandRequest carries one chat message
type CommandRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

// CommandResponse is the record a command created. Exactly one of Entry and
// Transfer is set.
type CommandResponse struct {
	Kind     string           `json:"kind"`
	Entry    *models.Entry    `json:"entry,omitempty"`
	Transfer *models.Transfer `json:"transfer,omitempty"`
}

// CommitDraftRequest is the state of the step-by-step "add" dialog. Amount
// holds the raw amount step, optionally followed by a note on the next line.
type CommitDraftRequest struct {
	Kind          string  `json:"kind" validate:"required,oneof=income expense"`
	Amount        string  `json:"amount" validate:"required"`
	AccountID     string  `json:"account_id" validate:"required,uuid"`
	CategoryID    string  `json:"category_id" validate:"required,uuid"`
	SubcategoryID *string `json:"subcategory_id,omitempty" validate:"omitempty,uuid"`
}
