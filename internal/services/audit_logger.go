package services

import (
	"context"
	"log/slog"
	"time"

	"ledger-bot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContextKey is the type of request-scoped values the services read
type ContextKey string

const (
	CorrelationIDKey ContextKey = "correlation_id"
	RequestIDKey     ContextKey = "request_id"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogEntryCreated(ctx context.Context, entry *models.Entry, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "entry created",
		slog.String("event_type", "entry_created"),
		slog.String("entry_id", entry.ID.String()),
		slog.String("account_id", entry.AccountID.String()),
		slog.String("category_id", entry.CategoryID.String()),
		slog.String("amount", entry.Amount.StringFixed(models.AmountScale)),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogEntryDeleted(ctx context.Context, entry *models.Entry, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "entry deleted",
		slog.String("event_type", "entry_deleted"),
		slog.String("entry_id", entry.ID.String()),
		slog.String("account_id", entry.AccountID.String()),
		slog.String("amount", entry.Amount.StringFixed(models.AmountScale)),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransferCreated(ctx context.Context, transfer *models.Transfer, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "transfer created",
		slog.String("event_type", "transfer_created"),
		slog.String("transfer_id", transfer.ID.String()),
		slog.String("from_account_id", transfer.AccountFromID.String()),
		slog.String("to_account_id", transfer.AccountToID.String()),
		slog.String("amount_from", transfer.AmountFrom.StringFixed(models.AmountScale)),
		slog.String("amount_to", transfer.AmountTo.StringFixed(models.AmountScale)),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransferDeleted(ctx context.Context, transfer *models.Transfer, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "transfer deleted",
		slog.String("event_type", "transfer_deleted"),
		slog.String("transfer_id", transfer.ID.String()),
		slog.String("from_account_id", transfer.AccountFromID.String()),
		slog.String("to_account_id", transfer.AccountToID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, delta decimal.Decimal, recordID uuid.UUID) {
	al.logger.InfoContext(ctx, "balance update",
		slog.String("event_type", "balance_update"),
		slog.String("account_id", accountID.String()),
		slog.String("delta", delta.StringFixed(models.AmountScale)),
		slog.String("record_id", recordID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogMutationFailed(ctx context.Context, operation string, errorMsg string, durationMs int64) {
	al.logger.WarnContext(ctx, "ledger mutation failed",
		slog.String("event_type", "mutation_failed"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAccountDeleted(ctx context.Context, accountID, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "account deleted",
		slog.String("event_type", "account_deleted"),
		slog.String("account_id", accountID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogUserPurged(ctx context.Context, userID uuid.UUID) {
	al.logger.WarnContext(ctx, "user purged",
		slog.String("event_type", "user_purged"),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}

	return ""
}
