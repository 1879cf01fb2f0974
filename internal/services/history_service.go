package services

import (
	"context"
	"fmt"

	"ledger-bot/internal/models"
	"ledger-bot/internal/repositories"

	"github.com/google/uuid"
)

const MaxHistoryLimit = 100

type historyService struct {
	entryRepo    repositories.EntryRepositoryInterface
	transferRepo repositories.TransferRepositoryInterface
}

func NewHistoryService(entryRepo repositories.EntryRepositoryInterface, transferRepo repositories.TransferRepositoryInterface) HistoryServiceInterface {
	return &historyService{
		entryRepo:    entryRepo,
		transferRepo: transferRepo,
	}
}

// ListEntries pages through the user's entries, newest first
func (s *historyService) ListEntries(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Entry, int64, error) {
	offset, limit = clampPage(offset, limit)
	entries, total, err := s.entryRepo.GetByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, total, nil
}

// ListTransfers pages through transfers touching the user's accounts, newest first
func (s *historyService) ListTransfers(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Transfer, int64, error) {
	offset, limit = clampPage(offset, limit)
	transfers, total, err := s.transferRepo.GetByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, total, nil
}

func clampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return offset, limit
}
