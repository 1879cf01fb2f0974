package dto

import (
	"ledger-bot/internal/models"
)

// CreateAliasRequest binds a token to the title of an account, category or
// subcategory
type CreateAliasRequest struct {
	Alias  string `json:"alias" validate:"required,alias_token"`
	Target string `json:"target" validate:"required,max=255"`
}

type AliasListResponse struct {
	Aliases []models.Alias `json:"aliases"`
}
