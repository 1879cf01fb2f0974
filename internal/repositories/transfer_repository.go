package repositories

import (
	"context"
	"errors"
	"fmt"

	"ledger-bot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransferNotFound = errors.New("transfer not found")

// transferRepository implements TransferRepositoryInterface
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *gorm.DB) TransferRepositoryInterface {
	return &transferRepository{db: db}
}

// GetByID retrieves a transfer by ID
func (r *transferRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transfer, error) {
	transfer := &models.Transfer{ID: id}
	if err := r.db.WithContext(ctx).First(transfer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return transfer, nil
}

// GetByUserID pages through transfers touching any of the user's accounts
func (r *transferRepository) GetByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Transfer, int64, error) {
	userAccounts := r.db.Model(&models.Account{}).Select("id").Where("user_id = ?", userID)
	query := r.db.WithContext(ctx).Model(&models.Transfer{}).
		Where("account_from_id IN (?) OR account_to_id IN (?)", userAccounts, userAccounts)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	var transfers []models.Transfer
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&transfers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transfers: %w", err)
	}
	return transfers, total, nil
}
