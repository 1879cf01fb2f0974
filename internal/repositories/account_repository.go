package repositories

import (
	"context"
	"errors"
	"fmt"

	"ledger-bot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountTitleTaken = errors.New("account title already exists")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account with its opening balance
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrAccountTitleTaken
		}
		if errors.Is(err, models.ErrAmountOverflow) || isNumericOverflowError(err) {
			return models.ErrAmountOverflow
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account := &models.Account{ID: id}
	if err := r.db.WithContext(ctx).First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetByUserID retrieves all accounts for a user
func (r *accountRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}

// FindByTitle matches a title case-insensitively within one user's accounts
func (r *accountRepository) FindByTitle(ctx context.Context, userID uuid.UUID, title string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND title_key = ?", userID, models.TitleKey(title)).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account by title: %w", err)
	}
	return &account, nil
}

// Rename changes the title of an account
func (r *accountRepository) Rename(ctx context.Context, id uuid.UUID, title string) error {
	if err := models.ValidateTitle(title); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.Account{ID: id}).Updates(map[string]interface{}{
		"title":     title,
		"title_key": models.TitleKey(title),
	})
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrAccountTitleTaken
		}
		return fmt.Errorf("failed to rename account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
