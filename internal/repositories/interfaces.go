package repositories

import (
	"context"

	"ledger-bot/internal/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=repository_mocks/repository_mocks.go -package=repository_mocks

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByExternalID(ctx context.Context, externalID int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AccountRepositoryInterface defines the contract for account repository operations.
// Balances are never written here; see LedgerRepositoryInterface.
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Account, error)
	FindByTitle(ctx context.Context, userID uuid.UUID, title string) (*models.Account, error)
	Rename(ctx context.Context, id uuid.UUID, title string) error
}

// CategoryRepositoryInterface defines the contract for category and subcategory operations
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *models.Category) error
	CreateSubcategory(ctx context.Context, subcategory *models.Subcategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetSubcategoryByID(ctx context.Context, id uuid.UUID) (*models.Subcategory, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, includeDisabled bool) ([]models.Category, error)
	FindByTitle(ctx context.Context, userID uuid.UUID, title string) (*models.Category, error)
	FindSubcategoryByTitle(ctx context.Context, userID uuid.UUID, title string) (*models.Subcategory, error)
	Update(ctx context.Context, id uuid.UUID, title *string, disabled *bool) error
}

// AliasRepositoryInterface defines the contract for alias operations
type AliasRepositoryInterface interface {
	Create(ctx context.Context, alias *models.Alias) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alias, error)
	FindByAlias(ctx context.Context, userID uuid.UUID, token string) (*models.Alias, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Alias, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EntryRepositoryInterface defines read access to entries
type EntryRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Entry, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Entry, int64, error)
}

// TransferRepositoryInterface defines read access to transfers
type TransferRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transfer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Transfer, int64, error)
}

// LedgerRepositoryInterface is the only writer of account balances. Every
// method runs as one database transaction: balances are locked in account ID
// order, changed, and the records written or removed, or nothing happens.
type LedgerRepositoryInterface interface {
	Create(ctx context.Context, record models.LedgerRecord) error
	Delete(ctx context.Context, record models.LedgerRecord) error
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
	DeleteSubcategory(ctx context.Context, subcategoryID uuid.UUID) error
	PurgeUser(ctx context.Context, userID uuid.UUID) error
}
