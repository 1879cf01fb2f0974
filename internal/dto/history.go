package dto

import (
	"ledger-bot/internal/models"
)

// EntryListResponse represents a page of entries, newest first
type EntryListResponse struct {
	Entries []models.Entry `json:"entries"`
	Total   int64          `json:"total"`
	Offset  int            `json:"offset"`
	Limit   int            `json:"limit"`
}

// TransferListResponse represents a page of transfers, newest first
type TransferListResponse struct {
	Transfers []models.Transfer `json:"transfers"`
	Total     int64             `json:"total"`
	Offset    int               `json:"offset"`
	Limit     int               `json:"limit"`
}
