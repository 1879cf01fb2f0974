package services

import (
	"context"
	"log/slog"
	"strings"

	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CommandKind is the operation a text command was classified as
type CommandKind string

const (
	CommandEntry    CommandKind = "entry"
	CommandTransfer CommandKind = "transfer"
)

// CommandResult is the record a command created. Exactly one of Entry and
// Transfer is set, according to Kind.
type CommandResult struct {
	Kind     CommandKind
	Entry    *models.Entry
	Transfer *models.Transfer
}

type commandService struct {
	resolver AliasResolverInterface
	ledger   LedgerServiceInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

// NewCommandService creates the text command pipeline
func NewCommandService(
	resolver AliasResolverInterface,
	ledger LedgerServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CommandServiceInterface {
	return &commandService{
		resolver: resolver,
		ledger:   ledger,
		metrics:  metrics,
		logger:   logger,
	}
}

// HandleCommand classifies a command by its number of space separated parts
// and records it:
//
//	<±amount> <account> <description>              entry
//	<amount> <account from> <account to>            transfer
//	<amount> <account from> <amount> <account to>   transfer
//
// With three parts the last one is first tried as an account. Only when no
// account matches is the command read as an entry, which then must start
// with a sign. User mistakes come back as *LedgerError; any other error is an
// infrastructure failure.
func (s *commandService) HandleCommand(ctx context.Context, userID uuid.UUID, text string) (*CommandResult, error) {
	result, err := s.handle(ctx, userID, strings.TrimSpace(text))

	kind := "unknown"
	if result != nil {
		kind = string(result.Kind)
	}
	status := "ok"
	if err != nil {
		if le, ok := ledgererrors.AsLedgerError(err); ok {
			status = string(le.Code)
			s.logger.WarnContext(ctx, "command rejected",
				slog.String("user_id", userID.String()),
				slog.String("code", string(le.Code)),
			)
		} else {
			status = "error"
			s.logger.ErrorContext(ctx, "command failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	s.metrics.IncrementCounter(MetricCommandHandled, map[string]string{"kind": kind, "result": status})

	return result, err
}

func (s *commandService) handle(ctx context.Context, userID uuid.UUID, text string) (*CommandResult, error) {
	parts := strings.Split(text, " ")

	switch len(parts) {
	case 3:
		accountTo, err := s.resolver.ResolveAccount(ctx, userID, parts[2])
		if err == nil {
			return s.transfer(ctx, userID, transferOperands{
				amountFrom: parts[0],
				from:       parts[1],
				amountTo:   parts[0],
				accountTo:  accountTo,
			})
		}
		if !ledgererrors.HasCode(err, ledgererrors.CantFindAccount) {
			return nil, err
		}
		if !strings.HasPrefix(text, "+") && !strings.HasPrefix(text, "-") {
			return nil, ledgererrors.NewLedgerError(ledgererrors.BadFirstCharForEntry)
		}
		return s.entry(ctx, userID, parts[0], parts[1], parts[2])
	case 4:
		return s.transfer(ctx, userID, transferOperands{
			amountFrom: parts[0],
			from:       parts[1],
			amountTo:   parts[2],
			to:         parts[3],
		})
	default:
		return nil, ledgererrors.NewLedgerError(ledgererrors.WrongPartsCount)
	}
}

// entry resolves the account and the description concurrently. Mistakes are
// reported in the order account, amount, description whichever lookup
// finishes first.
func (s *commandService) entry(ctx context.Context, userID uuid.UUID, amountToken, accountToken, descToken string) (*CommandResult, error) {
	var (
		account    *models.Account
		target     *Target
		accountErr error
		descErr    error
	)

	amount, amountErr := ParseAmount(amountToken)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		account, accountErr = s.resolver.ResolveAccount(gctx, userID, accountToken)
		return infrastructureOnly(accountErr)
	})
	g.Go(func() error {
		target, descErr = s.resolver.ResolveDescription(gctx, userID, descToken)
		return infrastructureOnly(descErr)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := firstError(accountErr, amountErr, descErr); err != nil {
		return nil, err
	}

	category, subcategory, _ := target.EntryCategory()
	entry, err := s.ledger.CreateEntry(ctx, userID, EntryParams{
		Account:     account,
		Category:    category,
		Subcategory: subcategory,
		Amount:      amount,
		Title:       descToken,
	})
	if err != nil {
		return nil, err
	}
	return &CommandResult{Kind: CommandEntry, Entry: entry}, nil
}

// transferOperands are the raw tokens of a transfer. accountTo is set when
// the three part probe already resolved the destination.
type transferOperands struct {
	amountFrom string
	from       string
	amountTo   string
	to         string
	accountTo  *models.Account
}

// transfer resolves both accounts concurrently. Mistakes are reported in the
// order amount from, amount to, source, destination.
func (s *commandService) transfer(ctx context.Context, userID uuid.UUID, ops transferOperands) (*CommandResult, error) {
	amountFrom, amountFromErr := ParseAmount(ops.amountFrom)
	amountTo, amountToErr := ParseAmount(ops.amountTo)

	var (
		accountFrom    *models.Account
		accountTo      = ops.accountTo
		accountFromErr error
		accountToErr   error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accountFrom, accountFromErr = s.resolver.ResolveAccount(gctx, userID, ops.from)
		return infrastructureOnly(accountFromErr)
	})
	if accountTo == nil {
		g.Go(func() error {
			accountTo, accountToErr = s.resolver.ResolveAccount(gctx, userID, ops.to)
			return infrastructureOnly(accountToErr)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := firstError(amountFromErr, amountToErr, accountFromErr, accountToErr); err != nil {
		return nil, err
	}

	transfer, err := s.ledger.CreateTransfer(ctx, userID, TransferParams{
		AccountFrom: accountFrom,
		AccountTo:   accountTo,
		AmountFrom:  amountFrom,
		AmountTo:    amountTo,
	})
	if err != nil {
		return nil, err
	}
	return &CommandResult{Kind: CommandTransfer, Transfer: transfer}, nil
}

// infrastructureOnly keeps the errors that should cancel sibling lookups
func infrastructureOnly(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := ledgererrors.AsLedgerError(err); ok {
		return nil
	}
	return err
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
