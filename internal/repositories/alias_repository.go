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
	ErrAliasNotFound = errors.New("alias not found")
	ErrAliasTaken    = errors.New("alias already exists")
)

type aliasRepository struct {
	db *gorm.DB
}

func NewAliasRepository(db *gorm.DB) AliasRepositoryInterface {
	return &aliasRepository{db: db}
}

func (r *aliasRepository) Create(ctx context.Context, alias *models.Alias) error {
	if err := r.db.WithContext(ctx).Create(alias).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrAliasTaken
		}
		return fmt.Errorf("failed to create alias: %w", err)
	}
	return nil
}

func (r *aliasRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Alias, error) {
	alias := &models.Alias{ID: id}
	if err := r.db.WithContext(ctx).First(alias).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAliasNotFound
		}
		return nil, fmt.Errorf("failed to get alias: %w", err)
	}
	return alias, nil
}

// FindByAlias looks a token up in the user's alias table. The token is
// case-folded before matching.
func (r *aliasRepository) FindByAlias(ctx context.Context, userID uuid.UUID, token string) (*models.Alias, error) {
	var alias models.Alias
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND alias = ?", userID, models.NormalizeAlias(token)).
		First(&alias).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAliasNotFound
		}
		return nil, fmt.Errorf("failed to find alias: %w", err)
	}
	return &alias, nil
}

func (r *aliasRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Alias, error) {
	var aliases []models.Alias
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("alias ASC").Find(&aliases).Error; err != nil {
		return nil, fmt.Errorf("failed to get aliases for user: %w", err)
	}
	return aliases, nil
}

func (r *aliasRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Alias{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete alias: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAliasNotFound
	}
	return nil
}
