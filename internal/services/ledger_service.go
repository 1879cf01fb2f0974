package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/events"
	"ledger-bot/internal/models"
	"ledger-bot/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryParams are the resolved operands of an entry
type EntryParams struct {
	Account     *models.Account
	Category    *models.Category
	Subcategory *models.Subcategory
	Amount      decimal.Decimal
	Title       string
}

// TransferParams are the resolved operands of a transfer
type TransferParams struct {
	AccountFrom *models.Account
	AccountTo   *models.Account
	AmountFrom  decimal.Decimal
	AmountTo    decimal.Decimal
}

type ledgerService struct {
	ledgerRepo   repositories.LedgerRepositoryInterface
	accountRepo  repositories.AccountRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	entryRepo    repositories.EntryRepositoryInterface
	transferRepo repositories.TransferRepositoryInterface
	publisher    events.Publisher
	auditLogger  AuditLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewLedgerService creates the service that records and reverses entries and transfers
func NewLedgerService(
	ledgerRepo repositories.LedgerRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	entryRepo repositories.EntryRepositoryInterface,
	transferRepo repositories.TransferRepositoryInterface,
	publisher events.Publisher,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		ledgerRepo:   ledgerRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		entryRepo:    entryRepo,
		transferRepo: transferRepo,
		publisher:    publisher,
		auditLogger:  auditLogger,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreateEntry records an entry and moves the account balance by its amount
// in one transaction
func (s *ledgerService) CreateEntry(ctx context.Context, userID uuid.UUID, params EntryParams) (*models.Entry, error) {
	if params.Account == nil || params.Category == nil {
		return nil, errors.New("entry requires an account and a category")
	}
	entry := &models.Entry{
		AccountID:  params.Account.ID,
		CategoryID: params.Category.ID,
		Title:      params.Title,
		Amount:     models.RoundAmount(params.Amount),
	}
	if params.Subcategory != nil {
		if params.Subcategory.CategoryID != params.Category.ID {
			return nil, ledgererrors.NewLedgerError(ledgererrors.SubcategoryMismatch)
		}
		entry.SubcategoryID = &params.Subcategory.ID
	}

	if err := s.mutate(ctx, "create_entry", func() error { return s.ledgerRepo.Create(ctx, entry) }); err != nil {
		return nil, err
	}

	s.auditLogger.LogEntryCreated(ctx, entry, userID)
	s.logEffects(ctx, entry, entry.Effects())
	s.publish(ctx, events.EntryCreated, userID, entry, entry.Effects())

	return entry, nil
}

// CreateTransfer records a transfer, debiting AmountFrom from the source and
// crediting AmountTo to the destination in one transaction
func (s *ledgerService) CreateTransfer(ctx context.Context, userID uuid.UUID, params TransferParams) (*models.Transfer, error) {
	if params.AccountFrom == nil || params.AccountTo == nil {
		return nil, errors.New("transfer requires both accounts")
	}
	transfer := &models.Transfer{
		AccountFromID: params.AccountFrom.ID,
		AccountToID:   params.AccountTo.ID,
		AmountFrom:    models.RoundAmount(params.AmountFrom),
		AmountTo:      models.RoundAmount(params.AmountTo),
	}

	if err := s.mutate(ctx, "create_transfer", func() error { return s.ledgerRepo.Create(ctx, transfer) }); err != nil {
		return nil, err
	}

	s.auditLogger.LogTransferCreated(ctx, transfer, userID)
	s.logEffects(ctx, transfer, transfer.Effects())
	s.publish(ctx, events.TransferCreated, userID, transfer, transfer.Effects())

	return transfer, nil
}

// DeleteEntry removes one of the user's entries and reverses its effect
func (s *ledgerService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return classifyManagementError(err)
	}

	owned, err := s.ownsAccount(ctx, userID, entry.AccountID)
	if err != nil {
		return err
	}
	if !owned {
		return ledgererrors.NewLedgerError(ledgererrors.EntryNotFound)
	}

	return s.ReverseOnDelete(ctx, userID, entry)
}

// DeleteTransfer removes a transfer touching one of the user's accounts and
// reverses both sides
func (s *ledgerService) DeleteTransfer(ctx context.Context, userID, transferID uuid.UUID) error {
	transfer, err := s.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		return classifyManagementError(err)
	}

	owned, err := s.ownsAccount(ctx, userID, transfer.AccountFromID)
	if err != nil {
		return err
	}
	if !owned {
		if owned, err = s.ownsAccount(ctx, userID, transfer.AccountToID); err != nil {
			return err
		}
	}
	if !owned {
		return ledgererrors.NewLedgerError(ledgererrors.TransferNotFound)
	}

	return s.ReverseOnDelete(ctx, userID, transfer)
}

// ReverseOnDelete undoes a record's balance effect and removes it. The
// record is reloaded inside the transaction, so the reversal uses the stored
// amounts and accounts and happens at most once.
func (s *ledgerService) ReverseOnDelete(ctx context.Context, userID uuid.UUID, record models.LedgerRecord) error {
	operation, eventType := "delete_entry", events.EntryDeleted
	notFound := ledgererrors.EntryNotFound
	if _, ok := record.(*models.Transfer); ok {
		operation, eventType = "delete_transfer", events.TransferDeleted
		notFound = ledgererrors.TransferNotFound
	}

	err := s.mutate(ctx, operation, func() error { return s.ledgerRepo.Delete(ctx, record) })
	if errors.Is(err, repositories.ErrLedgerRecordNotFound) {
		return ledgererrors.NewLedgerError(notFound, ledgererrors.WithCause(err))
	}
	if err != nil {
		return err
	}

	reversed := models.ReverseDeltas(record.Effects())
	switch r := record.(type) {
	case *models.Entry:
		s.auditLogger.LogEntryDeleted(ctx, r, userID)
	case *models.Transfer:
		s.auditLogger.LogTransferDeleted(ctx, r, userID)
	}
	s.logEffects(ctx, record, reversed)
	s.publish(ctx, eventType, userID, record, reversed)

	return nil
}

// CommitDraft turns a completed draft into an entry. Expenses are negated.
func (s *ledgerService) CommitDraft(ctx context.Context, userID uuid.UUID, draft *EntryDraft) (*models.Entry, error) {
	if err := draft.Validate(); err != nil {
		return nil, ledgererrors.NewLedgerError(ledgererrors.ValidationGeneral,
			ledgererrors.WithUserMessage(err.Error()), ledgererrors.WithCause(err))
	}

	account, err := s.accountRepo.GetByID(ctx, draft.AccountID)
	if err != nil && !errors.Is(err, repositories.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to load draft account: %w", err)
	}
	if account == nil || account.UserID != userID {
		return nil, ledgererrors.NewLedgerError(ledgererrors.CantFindAccount)
	}

	category, err := s.categoryRepo.GetByID(ctx, draft.CategoryID)
	if err != nil && !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to load draft category: %w", err)
	}
	if category == nil || category.UserID != userID {
		return nil, ledgererrors.NewLedgerError(ledgererrors.CantFindCategory)
	}

	params := EntryParams{
		Account:  account,
		Category: category,
		Amount:   draft.SignedAmount(),
		Title:    draft.Title,
	}

	if draft.SubcategoryID != nil {
		subcategory, err := s.categoryRepo.GetSubcategoryByID(ctx, *draft.SubcategoryID)
		if err != nil && !errors.Is(err, repositories.ErrSubcategoryNotFound) {
			return nil, fmt.Errorf("failed to load draft subcategory: %w", err)
		}
		if subcategory == nil {
			return nil, ledgererrors.NewLedgerError(ledgererrors.CantFindCategory)
		}
		params.Subcategory = subcategory
	}

	return s.CreateEntry(ctx, userID, params)
}

// mutate runs one repository call with metrics and failure logging, and
// classifies its error
func (s *ledgerService) mutate(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	duration := time.Since(start)

	s.metrics.RecordProcessingTime(MetricMutationDuration, duration)
	tags := map[string]string{"operation": operation}
	if err != nil {
		s.metrics.IncrementCounter(MetricMutationFailed, tags)
		s.auditLogger.LogMutationFailed(ctx, operation, err.Error(), duration.Milliseconds())
		return ClassifyError(err)
	}
	s.metrics.IncrementCounter(MetricMutationSuccess, tags)
	return nil
}

func (s *ledgerService) ownsAccount(ctx context.Context, userID, accountID uuid.UUID) (bool, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if errors.Is(err, repositories.ErrAccountNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load account: %w", err)
	}
	return account.UserID == userID, nil
}

func (s *ledgerService) logEffects(ctx context.Context, record models.LedgerRecord, deltas []models.BalanceDelta) {
	for _, d := range deltas {
		s.auditLogger.LogBalanceUpdate(ctx, d.AccountID, d.Amount, record.RecordID())
	}
}

// publish announces a committed mutation. A failure here never undoes the
// mutation.
func (s *ledgerService) publish(ctx context.Context, eventType events.EventType, userID uuid.UUID, record models.LedgerRecord, deltas []models.BalanceDelta) {
	changes := make([]events.BalanceChange, 0, len(deltas))
	for _, d := range deltas {
		changes = append(changes, events.BalanceChange{AccountID: d.AccountID, Amount: d.Amount})
	}

	event := events.NewEvent(eventType, userID, record.RecordID(), changes)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.metrics.IncrementCounter(MetricEventPublishFail, map[string]string{"type": string(eventType)})
		s.logger.WarnContext(ctx, "failed to publish ledger event",
			slog.String("type", string(eventType)),
			slog.String("record_id", record.RecordID().String()),
			slog.String("error", err.Error()),
		)
	}
}
