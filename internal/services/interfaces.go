package services

import (
	"context"
	"time"

	"ledger-bot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=service_mocks/service_mocks.go -package=service_mocks

// CommandServiceInterface is the single entry point for text commands
type CommandServiceInterface interface {
	HandleCommand(ctx context.Context, userID uuid.UUID, text string) (*CommandResult, error)
}

// AliasResolverInterface maps user tokens to ledger entities
type AliasResolverInterface interface {
	ResolveAccount(ctx context.Context, userID uuid.UUID, token string) (*models.Account, error)
	ResolveDescription(ctx context.Context, userID uuid.UUID, token string) (*Target, error)
	ResolveTitle(ctx context.Context, userID uuid.UUID, title string) (*Target, error)
}

// LedgerServiceInterface is the only service that changes balances
type LedgerServiceInterface interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, params EntryParams) (*models.Entry, error)
	CreateTransfer(ctx context.Context, userID uuid.UUID, params TransferParams) (*models.Transfer, error)
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
	DeleteTransfer(ctx context.Context, userID, transferID uuid.UUID) error
	ReverseOnDelete(ctx context.Context, userID uuid.UUID, record models.LedgerRecord) error
	CommitDraft(ctx context.Context, userID uuid.UUID, draft *EntryDraft) (*models.Entry, error)
}

type UserServiceInterface interface {
	EnsureUser(ctx context.Context, externalID int64, username string) (*models.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	PurgeUser(ctx context.Context, userID uuid.UUID) error
}

// AccountServiceInterface defines account management operations
type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, userID uuid.UUID, title, currency string, balance decimal.Decimal) (*models.Account, error)
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.Account, error)
	RenameAccount(ctx context.Context, userID, accountID uuid.UUID, title string) (*models.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID uuid.UUID) error
}

// CategoryServiceInterface defines category and subcategory management operations
type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, title string) (*models.Category, error)
	CreateSubcategory(ctx context.Context, userID, categoryID uuid.UUID, title string) (*models.Subcategory, error)
	ListCategories(ctx context.Context, userID uuid.UUID, includeDisabled bool) ([]models.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, title *string, disabled *bool) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error
	DeleteSubcategory(ctx context.Context, userID, subcategoryID uuid.UUID) error
}

type AliasServiceInterface interface {
	CreateAlias(ctx context.Context, userID uuid.UUID, alias, target string) (*models.Alias, error)
	ListAliases(ctx context.Context, userID uuid.UUID) ([]models.Alias, error)
	DeleteAlias(ctx context.Context, userID, aliasID uuid.UUID) error
}

type HistoryServiceInterface interface {
	ListEntries(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Entry, int64, error)
	ListTransfers(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Transfer, int64, error)
}

type TokenServiceInterface interface {
	GenerateToken(externalID int64, username string) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.ChatClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

type AuditLoggerInterface interface {
	LogEntryCreated(ctx context.Context, entry *models.Entry, userID uuid.UUID)
	LogEntryDeleted(ctx context.Context, entry *models.Entry, userID uuid.UUID)
	LogTransferCreated(ctx context.Context, transfer *models.Transfer, userID uuid.UUID)
	LogTransferDeleted(ctx context.Context, transfer *models.Transfer, userID uuid.UUID)
	LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, delta decimal.Decimal, recordID uuid.UUID)
	LogMutationFailed(ctx context.Context, operation string, errorMsg string, durationMs int64)
	LogAccountDeleted(ctx context.Context, accountID, userID uuid.UUID)
	LogUserPurged(ctx context.Context, userID uuid.UUID)
}
