package dto

import (
	"ledger-bot/internal/models"
)

// CreateAccountRequest represents the request payload for opening an account
type CreateAccountRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Currency string `json:"currency" validate:"required,max=16"`
	Balance  string `json:"balance,omitempty" validate:"omitempty,decimal_amount"`
}

// RenameAccountRequest represents the request payload for renaming an account
type RenameAccountRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

// AccountListResponse lists the user's accounts with their balances
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
