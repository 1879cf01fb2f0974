package repositories

import (
	"context"
	"errors"
	"fmt"

	"ledger-bot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("entry not found")

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepositoryInterface {
	return &entryRepository{db: db}
}

func (r *entryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Entry, error) {
	entry := &models.Entry{ID: id}
	if err := r.db.WithContext(ctx).First(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

// GetByUserID pages through the entries on a user's accounts, newest first
func (r *entryRepository) GetByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Entry, int64, error) {
	userAccounts := r.db.Model(&models.Account{}).Select("id").Where("user_id = ?", userID)
	query := r.db.WithContext(ctx).Model(&models.Entry{}).Where("account_id IN (?)", userAccounts)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count entries: %w", err)
	}

	var entries []models.Entry
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get entries: %w", err)
	}
	return entries, total, nil
}
