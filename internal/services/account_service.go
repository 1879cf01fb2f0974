package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"
	"ledger-bot/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	ledgerRepo  repositories.LedgerRepositoryInterface
	auditLogger AuditLoggerInterface
	logger      *slog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	auditLogger AuditLoggerInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		auditLogger: auditLogger,
		logger:      logger,
	}
}

// CreateAccount opens an account with an initial balance
func (s *accountService) CreateAccount(ctx context.Context, userID uuid.UUID, title, currency string, balance decimal.Decimal) (*models.Account, error) {
	account := &models.Account{
		UserID:   userID,
		Title:    title,
		Currency: currency,
		Balance:  models.RoundAmount(balance),
	}
	if err := models.CheckAmount(account.Balance); err != nil {
		return nil, ClassifyError(err)
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, classifyManagementError(err)
	}

	s.logger.InfoContext(ctx, "account created",
		slog.String("account_id", account.ID.String()),
		slog.String("user_id", userID.String()),
	)
	return account, nil
}

// ListAccounts returns the user's accounts ordered by title
func (s *accountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	accounts, err := s.accountRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].TitleKey < accounts[j].TitleKey
	})
	return accounts, nil
}

func (s *accountService) RenameAccount(ctx context.Context, userID, accountID uuid.UUID, title string) (*models.Account, error) {
	account, err := s.ownedAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Rename(ctx, accountID, title); err != nil {
		return nil, classifyManagementError(err)
	}
	account.Title = title
	account.TitleKey = models.TitleKey(title)
	return account, nil
}

// DeleteAccount removes the account with all its entries and transfers.
// The other side of every transfer gets its amount back.
func (s *accountService) DeleteAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	if _, err := s.ownedAccount(ctx, userID, accountID); err != nil {
		return err
	}

	if err := s.ledgerRepo.DeleteAccount(ctx, accountID); err != nil {
		return classifyManagementError(err)
	}

	s.auditLogger.LogAccountDeleted(ctx, accountID, userID)
	return nil
}

func (s *accountService) ownedAccount(ctx context.Context, userID, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, classifyManagementError(err)
	}
	if account.UserID != userID {
		return nil, ledgererrors.NewLedgerError(ledgererrors.AccountNotFound)
	}
	return account, nil
}
